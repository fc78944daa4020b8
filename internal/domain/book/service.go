package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/shared"
)

// Service 图书领域服务接口
type Service interface {
	shared.Service[Book, Patch]

	// ListByAuthor 作者详情页使用
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)
}

// service 领域服务实现
type service struct {
	*shared.CRUDService[Book, Patch]
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{
		CRUDService: shared.NewCRUDService[Book, Patch](repo, (*Book).Validate),
		repo:        repo,
	}
}

func (s *service) ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error) {
	books, err := s.repo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []*Book{}
	}
	return books, nil
}
