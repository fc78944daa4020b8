// Package router 组装gin引擎：中间件、运维端点、业务路由
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/library/docs" // swagger文档注册
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	Author   *handler.AuthorHandler
	Category *handler.CategoryHandler
	Book     *handler.BookHandler
	Patron   *handler.PatronHandler
	Loan     *handler.LoanHandler
	Health   *handler.HealthHandler
}

// Options 路由选项
type Options struct {
	Mode           string // debug|release|test
	MetricsEnabled bool
	MetricsPath    string
	SwaggerEnabled bool
	TracingEnabled bool
}

// resource 一组标准CRUD路由
type resource interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// New 创建gin引擎
func New(log *zap.Logger, h Handlers, opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.Logger(log))
	if opts.TracingEnabled {
		r.Use(middleware.Tracing())
	}
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics())
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, http.StatusNotFound, apperrors.ErrCodeNotFound, "路由不存在")
	})

	r.GET("/ping", h.Health.Ping)
	r.GET("/health", h.Health.Health)
	if opts.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/api/v1")
	register(v1.Group("/authors"), h.Author)
	register(v1.Group("/categories"), h.Category)
	register(v1.Group("/books"), h.Book)
	register(v1.Group("/patrons"), h.Patron)
	register(v1.Group("/loans"), h.Loan)

	return r
}

func register(g *gin.RouterGroup, res resource) {
	g.GET("", res.List)
	g.POST("", res.Create)
	g.GET("/:id", res.Get)
	g.PATCH("/:id", res.Update)
	g.DELETE("/:id", res.Delete)
}
