package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/server"
	"github.com/xiebiao/library/pkg/logger"
	"github.com/xiebiao/library/pkg/tracing"
)

// @title        图书馆管理API
// @version      1.0
// @description  作者、分类、图书、读者和借阅记录的管理接口
// @BasePath     /api/v1
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zlog, err := logger.New(logger.Options{
		Service:      cfg.Tracing.ServiceName,
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zlog.Sync() }()
	zap.ReplaceGlobals(zlog)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(ctx, tracing.Options{
			ServiceName: cfg.Tracing.ServiceName,
			Endpoint:    cfg.Tracing.Endpoint,
			SampleRatio: cfg.Tracing.SampleRatio,
		})
		if err != nil {
			zlog.Fatal("init tracer failed", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				zlog.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	// 4. 依赖注入
	srv, cleanup, err := server.Build(ctx, cfg, zlog)
	if err != nil {
		zlog.Fatal("build server failed", zap.Error(err))
	}
	defer cleanup()

	zlog.Info("config loaded",
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", cfg.Database.Driver),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("mq", cfg.MQ.Enabled),
		zap.Bool("tracing", cfg.Tracing.Enabled),
	)

	// 5. 启动服务，收到SIGINT/SIGTERM后优雅关闭
	if err := srv.Run(ctx); err != nil {
		zlog.Error("server exited", zap.Error(err))
	}
}
