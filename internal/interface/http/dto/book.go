package dto

import (
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/optional"
)

// CreateBookRequest 创建图书
// ISBN只校验唯一，不校验校验位
type CreateBookRequest struct {
	Title           string `json:"title" binding:"required,max=200" example:"Masumiyet Müzesi"`
	ISBN            string `json:"isbn" binding:"required,max=32" example:"9789750506093"`
	PublicationYear *int   `json:"publication_year" example:"2008"`
	AuthorID        uint   `json:"author_id" binding:"required" example:"1"`
	CategoryID      *uint  `json:"category_id" example:"1"`
}

// ToEntity 转为领域实体
func (r CreateBookRequest) ToEntity() *book.Book {
	return book.NewBook(r.Title, r.ISBN, r.AuthorID, r.CategoryID, r.PublicationYear)
}

// UpdateBookRequest 图书部分更新
// publication_year、category_id传null清空
type UpdateBookRequest struct {
	Title           *string                 `json:"title" binding:"omitempty,max=200"`
	ISBN            *string                 `json:"isbn" binding:"omitempty,max=32"`
	AuthorID        *uint                   `json:"author_id"`
	PublicationYear optional.Nullable[int]  `json:"publication_year" swaggertype:"integer"`
	CategoryID      optional.Nullable[uint] `json:"category_id" swaggertype:"integer"`
}

// ToPatch 转为领域补丁
func (r UpdateBookRequest) ToPatch() book.Patch {
	return book.Patch{
		Title:           r.Title,
		ISBN:            r.ISBN,
		AuthorID:        r.AuthorID,
		PublicationYear: r.PublicationYear,
		CategoryID:      r.CategoryID,
	}
}

// BookResponse 图书
type BookResponse struct {
	ID              uint   `json:"id" example:"1"`
	Title           string `json:"title" example:"Masumiyet Müzesi"`
	ISBN            string `json:"isbn" example:"9789750506093"`
	PublicationYear *int   `json:"publication_year" example:"2008"`
	AuthorID        uint   `json:"author_id" example:"1"`
	CategoryID      *uint  `json:"category_id" example:"1"`
}

// NewBookResponse 转换
func NewBookResponse(b *book.Book) *BookResponse {
	return &BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		ISBN:            b.ISBN,
		PublicationYear: b.PublicationYear,
		AuthorID:        b.AuthorID,
		CategoryID:      b.CategoryID,
	}
}

// NewBookList 转换列表
func NewBookList(items []*book.Book) []*BookResponse {
	out := make([]*BookResponse, 0, len(items))
	for _, b := range items {
		out = append(out, NewBookResponse(b))
	}
	return out
}
