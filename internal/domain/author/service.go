package author

import "github.com/xiebiao/library/internal/domain/shared"

// Service 作者领域服务接口
type Service = shared.Service[Author, Patch]

// NewService 创建作者领域服务
func NewService(repo Repository) Service {
	return shared.NewCRUDService[Author, Patch](repo, (*Author).Validate)
}
