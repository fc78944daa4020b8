// Package server 组装依赖并管理HTTP服务的生命周期
//
// 依赖链：Repository ← Service ← UseCase ← Handler ← gin.Engine
// Build按这个顺序手动组装，cmd/api/wire.go声明了等价的Wire注入器
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/library/internal/application/author"
	apploan "github.com/xiebiao/library/internal/application/loan"
	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/patron"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/gormstore"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// Server HTTP服务
type Server struct {
	cfg    *config.Config
	log    *zap.Logger
	engine *gin.Engine
	http   *http.Server
}

// New 用已组装的引擎创建服务
func New(cfg *config.Config, log *zap.Logger, engine *gin.Engine) *Server {
	return &Server{
		cfg:    cfg,
		log:    log,
		engine: engine,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      engine,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Build 组装全部依赖，返回的cleanup按创建的逆序释放资源
func Build(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// 基础设施层
	db, closeDB, err := ProvideDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, closeDB)

	redisClient, closeRedis, err := ProvideRedis(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	cleanups = append(cleanups, closeRedis)

	events, closeEvents := ProvideEventPublisher(cfg, log)
	cleanups = append(cleanups, closeEvents)

	cache := ProvideCache(redisClient, cfg)
	txManager := gormstore.NewTxManager(db)

	// 仓储层
	authorRepo := ProvideAuthorRepository(db, cache, log)
	categoryRepo := ProvideCategoryRepository(db, cache, log)
	patronRepo := ProvidePatronRepository(db, cache, log)
	bookRepo := gormstore.NewBookRepository(db)
	loanRepo := gormstore.NewLoanRepository(db)

	// 领域层
	authorService := author.NewService(authorRepo)
	categoryService := category.NewService(categoryRepo)
	bookService := book.NewService(bookRepo)
	patronService := patron.NewService(patronRepo)
	loanService := loan.NewService(loanRepo, txManager)

	// 应用层
	authorDetail := appauthor.NewGetAuthorDetailUseCase(authorService, bookService)
	checkout := apploan.NewCheckoutUseCase(loanService, events, log)
	updateLoan := apploan.NewUpdateLoanUseCase(loanService, events, log)

	// 接口层
	handlers := router.Handlers{
		Author:   handler.NewAuthorHandler(authorService, authorDetail),
		Category: handler.NewCategoryHandler(categoryService),
		Book:     handler.NewBookHandler(bookService),
		Patron:   handler.NewPatronHandler(patronService),
		Loan:     handler.NewLoanHandler(loanService, checkout, updateLoan),
		Health:   ProvideHealthHandler(db, redisClient),
	}

	return New(cfg, log, ProvideEngine(cfg, log, handlers)), cleanup, nil
}

// Handler 测试时直接用httptest驱动
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run 启动监听，ctx取消后在ShutdownTimeout内优雅关闭
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server started", zap.String("addr", s.http.Addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("启动服务失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server", zap.Duration("timeout", s.cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
