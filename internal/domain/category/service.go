package category

import "github.com/xiebiao/library/internal/domain/shared"

// Service 分类领域服务接口
type Service = shared.Service[Category, Patch]

// NewService 创建分类领域服务
func NewService(repo Repository) Service {
	return shared.NewCRUDService[Category, Patch](repo, (*Category).Validate)
}
