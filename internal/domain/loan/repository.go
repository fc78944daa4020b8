package loan

import (
	"context"

	"github.com/xiebiao/library/internal/domain/shared"
)

// Repository 借阅仓储接口
// 设计说明:
// 1. Create/Update在同一事务内校验patron_id、book_id是否存在
// 2. 存储层对"每本书最多一条未结借阅"有唯一约束，冲突时返回ErrBookOnLoan
type Repository interface {
	shared.Repository[Loan, Patch]

	// LockBook 锁定图书行(SELECT ... FOR UPDATE)，串行化同一本书的借出
	// 图书不存在时返回ErrBookRefNotFound
	LockBook(ctx context.Context, bookID uint) error

	// HasOpenLoan 图书是否存在未归还的借阅
	HasOpenLoan(ctx context.Context, bookID uint) (bool, error)
}
