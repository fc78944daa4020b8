package server

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appauthor "github.com/xiebiao/library/internal/application/author"
	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/patron"
	"github.com/xiebiao/library/internal/domain/shared"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/messaging"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
	"github.com/xiebiao/library/pkg/mq"
)

// ========================================
// Provider分组，cmd/api/wire.go与Build共用
// ========================================

// InfrastructureSet 数据库、缓存、消息
var InfrastructureSet = wire.NewSet(
	ProvideDB,
	ProvideRedis,
	ProvideCache,
	ProvideEventPublisher,
	gormstore.NewTxManager,
	wire.Bind(new(shared.TxManager), new(*gormstore.TxManager)),
)

// RepositorySet 仓储
var RepositorySet = wire.NewSet(
	ProvideAuthorRepository,
	ProvideCategoryRepository,
	ProvidePatronRepository,
	gormstore.NewBookRepository,
	gormstore.NewLoanRepository,
)

// DomainSet 领域服务
var DomainSet = wire.NewSet(
	author.NewService,
	category.NewService,
	book.NewService,
	patron.NewService,
	loan.NewService,
)

// ApplicationSet 用例
var ApplicationSet = wire.NewSet(
	appauthor.NewGetAuthorDetailUseCase,
	apploan.NewCheckoutUseCase,
	apploan.NewUpdateLoanUseCase,
)

// HandlerSet HTTP处理器与引擎
var HandlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewCategoryHandler,
	handler.NewBookHandler,
	handler.NewPatronHandler,
	handler.NewLoanHandler,
	ProvideHealthHandler,
	wire.Struct(new(router.Handlers), "*"),
	ProvideEngine,
)

// ProvideDB 打开数据库并迁移
func ProvideDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := gormstore.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { _ = gormstore.Close(db) }, nil
}

// ProvideRedis 未启用时返回nil
func ProvideRedis(ctx context.Context, cfg *config.Config) (*goredis.Client, func(), error) {
	if !cfg.Redis.Enabled {
		return nil, func() {}, nil
	}
	client, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { _ = client.Close() }, nil
}

// ProvideCache Redis未启用时返回nil，仓储不加缓存
func ProvideCache(client *goredis.Client, cfg *config.Config) *redis.CacheStore {
	if client == nil {
		return nil
	}
	return redis.NewCacheStore(client, cfg.Redis.CacheTTL)
}

// ProvideEventPublisher 未启用MQ或连接失败时降级为不发布
func ProvideEventPublisher(cfg *config.Config, log *zap.Logger) (loan.EventPublisher, func()) {
	if !cfg.MQ.Enabled {
		return messaging.NoopPublisher{}, func() {}
	}
	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType, log.Named("mq"))
	if err != nil {
		log.Warn("mq unavailable, loan events disabled", zap.Error(err))
		return messaging.NoopPublisher{}, func() {}
	}
	return messaging.NewLoanEventPublisher(publisher, 3*time.Second, log.Named("events")),
		func() { _ = publisher.Close() }
}

// ProvideAuthorRepository 作者仓储，启用Redis时加读缓存
func ProvideAuthorRepository(db *gorm.DB, cache *redis.CacheStore, log *zap.Logger) author.Repository {
	repo := gormstore.NewAuthorRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedRepository[author.Author, author.Patch](repo, cache, "author", log)
}

// ProvideCategoryRepository 分类仓储，启用Redis时加读缓存
func ProvideCategoryRepository(db *gorm.DB, cache *redis.CacheStore, log *zap.Logger) category.Repository {
	repo := gormstore.NewCategoryRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedRepository[category.Category, category.Patch](repo, cache, "category", log)
}

// ProvidePatronRepository 读者仓储，启用Redis时加读缓存
func ProvidePatronRepository(db *gorm.DB, cache *redis.CacheStore, log *zap.Logger) patron.Repository {
	repo := gormstore.NewPatronRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedRepository[patron.Patron, patron.Patch](repo, cache, "patron", log)
}

// ProvideHealthHandler 就绪检查包含数据库和（启用时的）Redis
func ProvideHealthHandler(db *gorm.DB, client *goredis.Client) *handler.HealthHandler {
	checks := map[string]handler.Pinger{
		"database": func(ctx context.Context) error { return gormstore.Ping(ctx, db) },
	}
	if client != nil {
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	}
	return handler.NewHealthHandler(checks)
}

// ProvideEngine 按配置组装gin引擎
func ProvideEngine(cfg *config.Config, log *zap.Logger, h router.Handlers) *gin.Engine {
	return router.New(log, h, router.Options{
		Mode:           cfg.Server.Mode,
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		SwaggerEnabled: cfg.Server.Mode != gin.ReleaseMode,
		TracingEnabled: cfg.Tracing.Enabled,
	})
}
