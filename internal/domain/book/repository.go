package book

import (
	"context"

	"github.com/xiebiao/library/internal/domain/shared"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. Create/Update在写入的同一事务内校验author_id、category_id是否存在
// 2. ISBN冲突返回ErrISBNDuplicate
// 3. Delete级联删除该图书的借阅记录
type Repository interface {
	shared.Repository[Book, Patch]

	// ListByAuthor 查询作者的全部图书，按id升序
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)
}
