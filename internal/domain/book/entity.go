package book

import (
	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/pkg/optional"
)

// Book 图书实体
// DDD设计说明:
// 1. ISBN作为业务唯一标识(数据库层保证唯一性)
// 2. 必须属于一个作者，分类可选
// 3. 删除图书会级联删除其借阅记录
type Book struct {
	ID              uint
	Title           string
	ISBN            string
	PublicationYear *int
	AuthorID        uint
	CategoryID      *uint
}

// NewBook 创建新图书(工厂方法)
func NewBook(title, isbn string, authorID uint, categoryID *uint, publicationYear *int) *Book {
	return &Book{
		Title:           title,
		ISBN:            isbn,
		PublicationYear: publicationYear,
		AuthorID:        authorID,
		CategoryID:      categoryID,
	}
}

// Validate 书名、ISBN、作者必填
func (b *Book) Validate() error {
	return shared.FirstError(
		shared.Required("title", b.Title),
		shared.Required("isbn", b.ISBN),
		shared.RequiredID("author_id", b.AuthorID),
	)
}

// Apply 合并补丁并校验
func (b *Book) Apply(p Patch) error {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.AuthorID != nil {
		b.AuthorID = *p.AuthorID
	}
	p.PublicationYear.ApplyTo(&b.PublicationYear)
	p.CategoryID.ApplyTo(&b.CategoryID)
	return b.Validate()
}

// Patch 图书部分更新
type Patch struct {
	Title           *string
	ISBN            *string
	AuthorID        *uint
	PublicationYear optional.Nullable[int]
	CategoryID      optional.Nullable[uint] // null表示移出分类
}

// Validate 出现的必填字段不能为空
func (p Patch) Validate() error {
	errs := []error{
		shared.RequiredIfSet("title", p.Title),
		shared.RequiredIfSet("isbn", p.ISBN),
	}
	if p.AuthorID != nil {
		errs = append(errs, shared.RequiredID("author_id", *p.AuthorID))
	}
	return shared.FirstError(errs...)
}
