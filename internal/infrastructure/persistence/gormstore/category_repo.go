package gormstore

import (
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/category"
)

// NewCategoryRepository 创建分类仓储
// 删除分类不删除图书，只把图书的category_id置空
func NewCategoryRepository(db *gorm.DB) category.Repository {
	return &crudRepository[category.Category, category.Patch, CategoryModel]{
		db:       db,
		tx:       NewTxManager(db),
		resource: "分类",
		notFound: category.ErrCategoryNotFound,
		toEntity: toCategoryEntity,
		toModel:  toCategoryModel,
		apply:    (*category.Category).Apply,
		cascade:  detachCategoryBooks,
		translate: func(err error) error {
			if isDuplicateError(err) {
				return category.ErrNameDuplicate
			}
			return nil
		},
	}
}

func detachCategoryBooks(db *gorm.DB, categoryID uint) error {
	return db.Model(&BookModel{}).
		Where("category_id = ?", categoryID).
		Update("category_id", nil).Error
}

func toCategoryEntity(m *CategoryModel) *category.Category {
	return &category.Category{ID: m.ID, Name: m.Name}
}

func toCategoryModel(c *category.Category) *CategoryModel {
	return &CategoryModel{ID: c.ID, Name: c.Name}
}
