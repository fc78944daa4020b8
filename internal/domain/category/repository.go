package category

import "github.com/xiebiao/library/internal/domain/shared"

// Repository 分类仓储接口
// Create/Update名称冲突返回ErrNameDuplicate；Delete把引用该分类的图书置为无分类
type Repository = shared.Repository[Category, Patch]
