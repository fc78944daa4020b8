package redis

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/pkg/metrics"
)

// CachedRepository 为仓储的FindByID加一层缓存
// 缓存故障只记日志，请求继续走数据库
// 只用于删除时不会级联修改其他已缓存实体的资源
type CachedRepository[T any, P any] struct {
	shared.Repository[T, P]
	cache    *CacheStore
	resource string
	log      *zap.Logger
}

// NewCachedRepository 包装仓储
func NewCachedRepository[T any, P any](repo shared.Repository[T, P], cache *CacheStore, resource string, log *zap.Logger) *CachedRepository[T, P] {
	return &CachedRepository[T, P]{
		Repository: repo,
		cache:      cache,
		resource:   resource,
		log:        log.With(zap.String("cache", resource)),
	}
}

// FindByID 先查缓存，未命中查库并回填
func (r *CachedRepository[T, P]) FindByID(ctx context.Context, id uint) (*T, error) {
	key := EntityKey(r.resource, id)

	var cached T
	hit, err := r.cache.Get(ctx, key, &cached)
	switch {
	case err != nil:
		metrics.RecordCache(r.resource, "error")
		r.log.Warn("read cache failed", zap.Uint("id", id), zap.Error(err))
	case hit:
		metrics.RecordCache(r.resource, "hit")
		return &cached, nil
	default:
		metrics.RecordCache(r.resource, "miss")
	}

	entity, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, key, entity); err != nil {
		r.log.Warn("fill cache failed", zap.Uint("id", id), zap.Error(err))
	}
	return entity, nil
}

// Update 写库成功后删除缓存
func (r *CachedRepository[T, P]) Update(ctx context.Context, id uint, patch P) (*T, error) {
	entity, err := r.Repository.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	r.evict(ctx, id)
	return entity, nil
}

// Delete 删库成功后删除缓存
func (r *CachedRepository[T, P]) Delete(ctx context.Context, id uint) error {
	if err := r.Repository.Delete(ctx, id); err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *CachedRepository[T, P]) evict(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, EntityKey(r.resource, id)); err != nil {
		r.log.Warn("evict cache failed", zap.Uint("id", id), zap.Error(err))
	}
}
