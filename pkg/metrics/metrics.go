// Package metrics Prometheus指标定义
//
// 指标类型：
//   - Counter：只增不减，如请求总数、借阅总数
//   - Gauge：可增可减，如正在处理的请求数、熔断器状态
//   - Histogram：分布统计，如请求耗时
//
// 命名规范：<namespace>_<name>_<unit>，如 library_http_requests_total
//
// 标签只使用低基数的值（method、path模板、status），不要放ID
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "library"

var (
	// ========== HTTP ==========

	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（秒）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的请求数
	HTTPRequestsInProgress prometheus.Gauge

	// ========== 借阅 ==========

	// LoansCheckedOutTotal 成功借出次数
	LoansCheckedOutTotal prometheus.Counter

	// LoansReturnedTotal 归还次数
	LoansReturnedTotal prometheus.Counter

	// LoanCheckoutsRejectedTotal 借出被拒绝次数，reason: on_loan|invalid|not_found|error
	LoanCheckoutsRejectedTotal *prometheus.CounterVec

	// LoanCheckoutDuration 借出处理耗时（秒）
	LoanCheckoutDuration prometheus.Histogram

	// ========== 缓存 ==========

	// CacheRequestsTotal 缓存读取次数，result: hit|miss|error
	CacheRequestsTotal *prometheus.CounterVec

	// ========== 熔断器 ==========

	// CircuitBreakerState 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
	CircuitBreakerState *prometheus.GaugeVec

	// CircuitBreakerRequests 经过熔断器的请求数，result: success|failure|rejected
	CircuitBreakerRequests *prometheus.CounterVec

	// ========== 消息队列 ==========

	// MessagesPublishedTotal 发布的消息数
	MessagesPublishedTotal *prometheus.CounterVec

	// MessagesConsumedTotal 消费的消息数，result: ack|nack|discard
	MessagesConsumedTotal *prometheus.CounterVec

	// MessageProcessingDuration 消息处理耗时（秒）
	MessageProcessingDuration *prometheus.HistogramVec
)

var initOnce sync.Once

// InitMetrics 注册所有指标到默认Registry，可重复调用
func InitMetrics() {
	initOnce.Do(register)
}

func register() {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_in_progress",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	LoansCheckedOutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_checked_out_total",
			Help:      "Total number of successful checkouts",
		},
	)

	LoansReturnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loans_returned_total",
			Help:      "Total number of returned loans",
		},
	)

	LoanCheckoutsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loan_checkouts_rejected_total",
			Help:      "Total number of rejected checkouts by reason",
		},
		[]string{"reason"},
	)

	LoanCheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "loan_checkout_duration_seconds",
			Help:      "Checkout processing latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_requests_total",
			Help:      "Total number of cache lookups",
		},
		[]string{"resource", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=CLOSED, 1=OPEN, 2=HALF_OPEN)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"},
	)

	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_published_total",
			Help:      "Total number of messages published",
		},
		[]string{"exchange", "routing_key"},
	)

	MessagesConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total number of messages consumed",
		},
		[]string{"queue", "result"},
	)

	MessageProcessingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "message_processing_duration_seconds",
			Help:      "Message processing latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"queue"},
	)
}

// Handler 暴露默认Registry的/metrics处理器
func Handler() http.Handler {
	InitMetrics()
	return promhttp.Handler()
}

// RecordCache 记录一次缓存读取结果
func RecordCache(resource, result string) {
	InitMetrics()
	CacheRequestsTotal.WithLabelValues(resource, result).Inc()
}
