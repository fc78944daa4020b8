package loan

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const tracerName = "library/loan"

// CheckoutUseCase 借出用例
// 可借性检查和写入由领域服务在一个事务里完成
// 事务提交后再发布事件，发布失败不影响借出结果
type CheckoutUseCase struct {
	loans  loan.Service
	events loan.EventPublisher
	log    *zap.Logger
	now    func() time.Time
}

// NewCheckoutUseCase 创建借出用例
func NewCheckoutUseCase(loans loan.Service, events loan.EventPublisher, log *zap.Logger) *CheckoutUseCase {
	metrics.InitMetrics()
	return &CheckoutUseCase{loans: loans, events: events, log: log, now: time.Now}
}

// Execute 执行借出
func (uc *CheckoutUseCase) Execute(ctx context.Context, l *loan.Loan) (*loan.Loan, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Checkout")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("patron_id", int64(l.PatronID)),
		attribute.Int64("book_id", int64(l.BookID)),
	)

	start := time.Now()
	created, err := uc.loans.Create(ctx, l)
	metrics.LoanCheckoutDuration.Observe(time.Since(start).Seconds())
	tracing.RecordError(span, err)
	if err != nil {
		metrics.LoanCheckoutsRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		uc.log.Info("checkout rejected",
			zap.Uint("patron_id", l.PatronID),
			zap.Uint("book_id", l.BookID),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.LoansCheckedOutTotal.Inc()
	span.SetAttributes(attribute.Int64("loan_id", int64(created.ID)))
	uc.log.Info("book checked out",
		zap.Uint("loan_id", created.ID),
		zap.Uint("patron_id", created.PatronID),
		zap.Uint("book_id", created.BookID),
		zap.String("trace_id", tracing.ExtractTraceID(ctx)),
	)

	uc.publish(ctx, loan.EventCheckedOut, created)
	// 补录的历史借阅带归还日期，同时记一次归还
	if !created.IsOpen() {
		metrics.LoansReturnedTotal.Inc()
		uc.publish(ctx, loan.EventReturned, created)
	}
	return created, nil
}

func (uc *CheckoutUseCase) publish(ctx context.Context, eventType string, l *loan.Loan) {
	publish(ctx, uc.events, uc.log, loan.NewEvent(eventType, l, uc.now()))
}

func publish(ctx context.Context, events loan.EventPublisher, log *zap.Logger, ev loan.Event) {
	if err := events.Publish(ctx, ev); err != nil {
		log.Warn("publish loan event failed",
			zap.String("event", ev.Type),
			zap.Uint("loan_id", ev.LoanID),
			zap.Error(err),
		)
	}
}

func rejectReason(err error) string {
	switch apperrors.KindOf(err) {
	case apperrors.KindBusinessRule:
		return "on_loan"
	case apperrors.KindValidation:
		return "invalid"
	case apperrors.KindNotFound, apperrors.KindForeignKey:
		return "not_found"
	default:
		return "error"
	}
}
