package loan

import (
	"context"

	"github.com/xiebiao/library/internal/domain/shared"
)

// Service 借阅领域服务接口
// 除统一CRUD外，Create额外执行可借性检查
type Service = shared.Service[Loan, Patch]

// service 借阅领域服务实现
type service struct {
	*shared.CRUDService[Loan, Patch]
	repo Repository
	tx   shared.TxManager
}

// NewService 创建借阅领域服务
func NewService(repo Repository, tx shared.TxManager) Service {
	return &service{
		CRUDService: shared.NewCRUDService[Loan, Patch](repo, (*Loan).Validate),
		repo:        repo,
		tx:          tx,
	}
}

// Create 借出图书
// 检查与插入在同一事务内完成:
//  1. 锁定图书行，同一本书的并发借出在此排队
//  2. 存在未结借阅则拒绝
//  3. 插入借阅记录(唯一约束兜底)
func (s *service) Create(ctx context.Context, l *Loan) (*Loan, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.Transaction(ctx, func(txCtx context.Context) error {
		if err := s.repo.LockBook(txCtx, l.BookID); err != nil {
			return err
		}

		open, err := s.repo.HasOpenLoan(txCtx, l.BookID)
		if err != nil {
			return err
		}
		if open {
			return ErrBookOnLoan
		}

		return s.repo.Create(txCtx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}
