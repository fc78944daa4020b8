package gormstore

import (
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/patron"
)

// NewPatronRepository 创建读者仓储
// 删除读者时先删除其借阅记录
func NewPatronRepository(db *gorm.DB) patron.Repository {
	return &crudRepository[patron.Patron, patron.Patch, PatronModel]{
		db:       db,
		tx:       NewTxManager(db),
		resource: "读者",
		notFound: patron.ErrPatronNotFound,
		toEntity: toPatronEntity,
		toModel:  toPatronModel,
		apply:    (*patron.Patron).Apply,
		cascade: func(db *gorm.DB, patronID uint) error {
			return db.Where("patron_id = ?", patronID).Delete(&LoanModel{}).Error
		},
		translate: func(err error) error {
			if isDuplicateError(err) {
				return patron.ErrEmailDuplicate
			}
			return nil
		},
	}
}

func toPatronEntity(m *PatronModel) *patron.Patron {
	return &patron.Patron{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Active:    m.Active,
	}
}

func toPatronModel(p *patron.Patron) *PatronModel {
	return &PatronModel{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Active:    p.Active,
	}
}
