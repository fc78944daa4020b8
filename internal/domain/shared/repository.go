// Package shared 五类实体共用的仓储契约与CRUD编排
package shared

import "context"

const (
	// DefaultLimit 未指定limit时的默认返回条数
	DefaultLimit = 100
	// MaxLimit 单次列表查询的上限
	MaxLimit = 500
)

// ListParams 偏移分页参数
type ListParams struct {
	Skip  int // 跳过的记录数
	Limit int // 最多返回的记录数
}

// Normalize 负数skip归零，limit缺省为DefaultLimit且不超过MaxLimit
func (p ListParams) Normalize() ListParams {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Repository 通用仓储接口
// T是实体类型，P是该实体的补丁类型
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. Update在同一事务内读取、合并补丁、校验并写回
type Repository[T any, P any] interface {
	// List 按id升序返回，无数据时返回空切片
	List(ctx context.Context, params ListParams) ([]*T, error)

	// FindByID 不存在时返回实体对应的NotFound错误
	FindByID(ctx context.Context, id uint) (*T, error)

	// Create 成功后回填entity的ID
	Create(ctx context.Context, entity *T) error

	// Update 仅修改补丁中出现的字段
	Update(ctx context.Context, id uint, patch P) (*T, error)

	// Delete 按实体的级联策略删除
	Delete(ctx context.Context, id uint) error
}

// TxManager 事务管理器接口
// fn内通过ctx执行的仓储操作处于同一事务，fn返回error时回滚
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
