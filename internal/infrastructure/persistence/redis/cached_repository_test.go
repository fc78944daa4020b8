package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/shared"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 需要真实Redis：LIBRARY_TEST_REDIS_ADDR=127.0.0.1:6379
func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("LIBRARY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LIBRARY_TEST_REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	require.NoError(t, client.Ping(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })
	return client
}

type countingRepo struct {
	shared.Repository[author.Author, author.Patch]
	rows  map[uint]*author.Author
	reads int
}

func (r *countingRepo) FindByID(_ context.Context, id uint) (*author.Author, error) {
	r.reads++
	a, ok := r.rows[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *countingRepo) Update(_ context.Context, id uint, p author.Patch) (*author.Author, error) {
	a := r.rows[id]
	if err := a.Apply(p); err != nil {
		return nil, err
	}
	cp := *a
	return &cp, nil
}

func (r *countingRepo) Delete(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

func TestCachedRepositoryReadThroughAndEvict(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	resource := "author-test-" + uuid.NewString()

	bio := "Nobel 2006"
	inner := &countingRepo{rows: map[uint]*author.Author{
		1: {ID: 1, FirstName: "Orhan", LastName: "Pamuk", Biography: &bio},
	}}
	repo := NewCachedRepository[author.Author, author.Patch](inner, NewCacheStore(client, time.Minute), resource, zap.NewNop())
	t.Cleanup(func() { client.Del(ctx, EntityKey(resource, 1)) })

	first, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.reads, "第二次读取命中缓存")

	last := "P."
	_, err = repo.Update(ctx, 1, author.Patch{LastName: &last})
	require.NoError(t, err)

	third, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "P.", third.LastName)
	assert.Equal(t, 2, inner.reads)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)
}

func TestCacheStoreMiss(t *testing.T) {
	client := newTestClient(t)
	store := NewCacheStore(client, time.Minute)

	var dst author.Author
	hit, err := store.Get(context.Background(), EntityKey("missing", 42), &dst)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, store.Delete(context.Background()))
}

// 不可达的Redis，无需真实实例
func newUnreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCacheStoreUnavailable(t *testing.T) {
	store := NewCacheStore(newUnreachableClient(t), time.Minute)
	ctx := context.Background()

	var dst author.Author
	hit, err := store.Get(ctx, EntityKey("author", 1), &dst)
	assert.False(t, hit)
	assert.ErrorIs(t, err, apperrors.ErrRedisError)
	assert.Equal(t, apperrors.ErrCodeRedisError, apperrors.GetAppError(err).Code)

	err = store.Set(ctx, EntityKey("author", 1), &dst)
	assert.ErrorIs(t, err, apperrors.ErrRedisError)

	err = store.Delete(ctx, EntityKey("author", 1))
	assert.ErrorIs(t, err, apperrors.ErrRedisError)
}

func TestCachedRepositoryFallsBackWhenCacheDown(t *testing.T) {
	inner := &countingRepo{rows: map[uint]*author.Author{
		1: {ID: 1, FirstName: "Orhan", LastName: "Pamuk"},
	}}
	repo := NewCachedRepository[author.Author, author.Patch](inner, NewCacheStore(newUnreachableClient(t), time.Minute), "author", zap.NewNop())

	a, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Pamuk", a.LastName)
	assert.Equal(t, 1, inner.reads)
	assert.NoError(t, repo.Delete(context.Background(), 1))
}

func TestEntityKey(t *testing.T) {
	assert.Equal(t, "library:category:7", EntityKey("category", 7))
}
