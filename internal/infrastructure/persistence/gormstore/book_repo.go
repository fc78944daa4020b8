package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/book"
)

// bookRepository 图书仓储实现
// 设计说明:
// 1. 通用CRUD由crudRepository完成
// 2. 写入前在同一事务内确认作者、分类存在
// 3. ISBN重复转换为book.ErrISBNDuplicate
type bookRepository struct {
	*crudRepository[book.Book, book.Patch, BookModel]
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{
		crudRepository: &crudRepository[book.Book, book.Patch, BookModel]{
			db:        db,
			tx:        NewTxManager(db),
			resource:  "图书",
			notFound:  book.ErrBookNotFound,
			toEntity:  toBookEntity,
			toModel:   toBookModel,
			apply:     (*book.Book).Apply,
			checkRefs: checkBookRefs,
			cascade:   deleteBookLoans,
			translate: func(err error) error {
				if isDuplicateError(err) {
					return book.ErrISBNDuplicate
				}
				return nil
			},
		},
	}
}

// ListByAuthor 查询作者的图书
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	var models []BookModel
	err := r.conn(ctx).
		Where("author_id = ?", authorID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "查询作者图书失败")
	}

	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books, nil
}

func checkBookRefs(db *gorm.DB, b *book.Book) error {
	if err := ensureExists(db, &AuthorModel{}, b.AuthorID, book.ErrAuthorRefNotFound); err != nil {
		return err
	}
	if b.CategoryID != nil {
		return ensureExists(db, &CategoryModel{}, *b.CategoryID, book.ErrCategoryRefNotFound)
	}
	return nil
}

func deleteBookLoans(db *gorm.DB, bookID uint) error {
	return db.Where("book_id = ?", bookID).Delete(&LoanModel{}).Error
}

func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ID:              m.ID,
		Title:           m.Title,
		ISBN:            m.ISBN,
		PublicationYear: m.PublicationYear,
		AuthorID:        m.AuthorID,
		CategoryID:      m.CategoryID,
	}
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
	}
}
