package messaging

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/metrics"
)

// Sender 消息发送接口，*mq.Publisher实现了它
type Sender interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// LoanEventPublisher 通过熔断器向MQ发布借阅事件
// Broker不可用时快速失败，不拖慢借阅请求
type LoanEventPublisher struct {
	sender  Sender
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
	log     *zap.Logger
}

// NewLoanEventPublisher 创建事件发布者
func NewLoanEventPublisher(sender Sender, timeout time.Duration, log *zap.Logger) *LoanEventPublisher {
	metrics.InitMetrics()
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	cfg := circuitbreaker.DefaultConfig()
	cfg.OnStateChange = func(name string, from, to circuitbreaker.State) {
		metrics.CircuitBreakerState.WithLabelValues(name).Set(float64(to))
		log.Warn("circuit breaker state changed",
			zap.String("breaker", name),
			zap.Stringer("from", from),
			zap.Stringer("to", to),
		)
	}
	breaker := circuitbreaker.New("loan-events", cfg)
	metrics.CircuitBreakerState.WithLabelValues(breaker.Name()).Set(float64(circuitbreaker.StateClosed))

	return &LoanEventPublisher{sender: sender, breaker: breaker, timeout: timeout, log: log}
}

// Publish 以事件类型为routing key发布
func (p *LoanEventPublisher) Publish(ctx context.Context, ev loan.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		return p.sender.Publish(ctx, ev.Type, ev)
	})

	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.CircuitBreakerRequests.WithLabelValues(p.breaker.Name(), result).Inc()
	return err
}

// State 熔断器当前状态
func (p *LoanEventPublisher) State() circuitbreaker.State {
	return p.breaker.State()
}

// NoopPublisher 未启用MQ时使用
type NoopPublisher struct{}

// Publish 丢弃事件
func (NoopPublisher) Publish(context.Context, loan.Event) error { return nil }

var (
	_ loan.EventPublisher = (*LoanEventPublisher)(nil)
	_ loan.EventPublisher = NoopPublisher{}
)
