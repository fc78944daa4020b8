//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 生成：wire gen ./cmd/api
// 生成的InitializeServer与server.Build组装顺序一致，Provider分组定义在internal/server

package main

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/server"
)

// InitializeServer 初始化整个应用
// 返回的cleanup按逆序关闭数据库、Redis和MQ连接
func InitializeServer(ctx context.Context, cfg *config.Config, log *zap.Logger) (*server.Server, func(), error) {
	wire.Build(
		server.InfrastructureSet,
		server.RepositorySet,
		server.DomainSet,
		server.ApplicationSet,
		server.HandlerSet,
		server.New,
	)
	return nil, nil, nil
}
