package shared

import "context"

// Patch 补丁需要能在接触存储之前校验自身
type Patch interface {
	Validate() error
}

// Service 实体的统一CRUD契约
type Service[T any, P Patch] interface {
	List(ctx context.Context, params ListParams) ([]*T, error)
	Get(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, id uint, patch P) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// CRUDService 通用CRUD编排：先做结构校验，再调用仓储
type CRUDService[T any, P Patch] struct {
	repo     Repository[T, P]
	validate func(*T) error
}

// NewCRUDService 创建通用CRUD服务，validate用于创建前的字段校验
func NewCRUDService[T any, P Patch](repo Repository[T, P], validate func(*T) error) *CRUDService[T, P] {
	return &CRUDService[T, P]{repo: repo, validate: validate}
}

// List 分页查询
func (s *CRUDService[T, P]) List(ctx context.Context, params ListParams) ([]*T, error) {
	items, err := s.repo.List(ctx, params.Normalize())
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// Get 根据ID查询
func (s *CRUDService[T, P]) Get(ctx context.Context, id uint) (*T, error) {
	return s.repo.FindByID(ctx, id)
}

// Create 校验后持久化
func (s *CRUDService[T, P]) Create(ctx context.Context, entity *T) (*T, error) {
	if s.validate != nil {
		if err := s.validate(entity); err != nil {
			return nil, err
		}
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update 先校验补丁本身，合并后的校验由仓储在事务内完成
func (s *CRUDService[T, P]) Update(ctx context.Context, id uint, patch P) (*T, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete 删除
func (s *CRUDService[T, P]) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
