package patron

import "github.com/xiebiao/library/internal/domain/shared"

// Service 读者领域服务接口
type Service = shared.Service[Patron, Patch]

// NewService 创建读者领域服务
func NewService(repo Repository) Service {
	return shared.NewCRUDService[Patron, Patch](repo, (*Patron).Validate)
}
