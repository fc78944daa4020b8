package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// KeyPrefix 所有缓存key的前缀
const KeyPrefix = "library:"

// CacheStore Redis缓存存储(Cache-Aside)
// 1. 读：先查缓存，未命中再查数据库并回填
// 2. 写：更新数据库后删除缓存，下次读取时重新加载
type CacheStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCacheStore 创建缓存存储实例
func NewCacheStore(client *redis.Client, ttl time.Duration) *CacheStore {
	return &CacheStore{client: client, ttl: ttl}
}

// Get 读取并反序列化，未命中返回(false, nil)
// Redis故障返回ErrRedisError
func (c *CacheStore) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperrors.ErrRedisError.WithCause(fmt.Errorf("获取缓存失败: %w", err))
	}
	if err := json.Unmarshal(val, dst); err != nil {
		return false, fmt.Errorf("反序列化失败: %w", err)
	}
	return true, nil
}

// Set 序列化后写入，带过期时间
func (c *CacheStore) Set(ctx context.Context, key string, value interface{}) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("设置缓存失败: %w", err))
	}
	return nil
}

// Delete 删除缓存
func (c *CacheStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return apperrors.ErrRedisError.WithCause(fmt.Errorf("删除缓存失败: %w", err))
	}
	return nil
}

// EntityKey 实体详情key，如 library:author:1
func EntityKey(resource string, id uint) string {
	return fmt.Sprintf("%s%s:%d", KeyPrefix, resource, id)
}
