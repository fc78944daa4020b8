package patron

import "github.com/xiebiao/library/internal/domain/shared"

// Repository 读者仓储接口
// 邮箱冲突返回ErrEmailDuplicate；Delete级联删除该读者的借阅记录
type Repository = shared.Repository[Patron, Patch]
