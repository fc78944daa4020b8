package gormstore

import (
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
)

// NewAuthorRepository 创建作者仓储
// 删除作者时依次删除：其图书的借阅 → 其图书 → 作者
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &crudRepository[author.Author, author.Patch, AuthorModel]{
		db:       db,
		tx:       NewTxManager(db),
		resource: "作者",
		notFound: author.ErrAuthorNotFound,
		toEntity: toAuthorEntity,
		toModel:  toAuthorModel,
		apply:    (*author.Author).Apply,
		cascade:  deleteAuthorBooks,
	}
}

func deleteAuthorBooks(db *gorm.DB, authorID uint) error {
	bookIDs := db.Model(&BookModel{}).Select("id").Where("author_id = ?", authorID)
	if err := db.Where("book_id IN (?)", bookIDs).Delete(&LoanModel{}).Error; err != nil {
		return err
	}
	return db.Where("author_id = ?", authorID).Delete(&BookModel{}).Error
}

func toAuthorEntity(m *AuthorModel) *author.Author {
	return &author.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Biography: m.Biography,
	}
}

func toAuthorModel(a *author.Author) *AuthorModel {
	return &AuthorModel{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Biography: a.Biography,
	}
}
