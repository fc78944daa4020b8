package author

import "github.com/xiebiao/library/internal/domain/shared"

// Repository 作者仓储接口
// Delete级联删除该作者的图书以及这些图书的借阅记录
type Repository = shared.Repository[Author, Patch]
