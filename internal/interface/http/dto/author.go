package dto

import (
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/pkg/optional"
)

// CreateAuthorRequest 创建作者
type CreateAuthorRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100" example:"Orhan"`
	LastName  string  `json:"last_name" binding:"required,max=100" example:"Pamuk"`
	Biography *string `json:"biography" example:"Nobel ödüllü Türk yazar."`
}

// ToEntity 转为领域实体
func (r CreateAuthorRequest) ToEntity() *author.Author {
	return author.NewAuthor(r.FirstName, r.LastName, r.Biography)
}

// UpdateAuthorRequest 作者部分更新，biography传null清空
type UpdateAuthorRequest struct {
	FirstName *string                   `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string                   `json:"last_name" binding:"omitempty,max=100"`
	Biography optional.Nullable[string] `json:"biography" swaggertype:"string"`
}

// ToPatch 转为领域补丁
func (r UpdateAuthorRequest) ToPatch() author.Patch {
	return author.Patch{FirstName: r.FirstName, LastName: r.LastName, Biography: r.Biography}
}

// AuthorResponse 作者
type AuthorResponse struct {
	ID        uint    `json:"id" example:"1"`
	FirstName string  `json:"first_name" example:"Orhan"`
	LastName  string  `json:"last_name" example:"Pamuk"`
	Biography *string `json:"biography"`
}

// AuthorDetailResponse 作者详情，附带其图书
type AuthorDetailResponse struct {
	AuthorResponse
	Books []*BookResponse `json:"books"`
}

// NewAuthorResponse 转换
func NewAuthorResponse(a *author.Author) *AuthorResponse {
	return &AuthorResponse{ID: a.ID, FirstName: a.FirstName, LastName: a.LastName, Biography: a.Biography}
}

// NewAuthorList 转换列表
func NewAuthorList(items []*author.Author) []*AuthorResponse {
	out := make([]*AuthorResponse, 0, len(items))
	for _, a := range items {
		out = append(out, NewAuthorResponse(a))
	}
	return out
}

// NewAuthorDetailResponse 转换作者详情
func NewAuthorDetailResponse(a *author.Author, books []*book.Book) *AuthorDetailResponse {
	return &AuthorDetailResponse{AuthorResponse: *NewAuthorResponse(a), Books: NewBookList(books)}
}
