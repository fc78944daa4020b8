package author

import (
	"context"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
)

// Detail 作者及其图书
type Detail struct {
	Author *author.Author
	Books  []*book.Book
}

// GetAuthorDetailUseCase 作者详情用例
// 跨两个聚合读取，作者不存在时直接返回NotFound
type GetAuthorDetailUseCase struct {
	authors author.Service
	books   book.Service
}

// NewGetAuthorDetailUseCase 创建作者详情用例
func NewGetAuthorDetailUseCase(authors author.Service, books book.Service) *GetAuthorDetailUseCase {
	return &GetAuthorDetailUseCase{authors: authors, books: books}
}

// Execute 按ID查询作者详情
func (uc *GetAuthorDetailUseCase) Execute(ctx context.Context, id uint) (*Detail, error) {
	a, err := uc.authors.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	books, err := uc.books.ListByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Author: a, Books: books}, nil
}
