package loan

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

// UpdateLoanUseCase 借阅部分更新用例
// 未结借阅因本次更新而结清时记一次归还并发布事件
type UpdateLoanUseCase struct {
	loans  loan.Service
	events loan.EventPublisher
	log    *zap.Logger
	now    func() time.Time
}

// NewUpdateLoanUseCase 创建更新用例
func NewUpdateLoanUseCase(loans loan.Service, events loan.EventPublisher, log *zap.Logger) *UpdateLoanUseCase {
	metrics.InitMetrics()
	return &UpdateLoanUseCase{loans: loans, events: events, log: log, now: time.Now}
}

// Execute 执行更新
func (uc *UpdateLoanUseCase) Execute(ctx context.Context, id uint, patch loan.Patch) (*loan.Loan, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateLoan")
	defer span.End()
	span.SetAttributes(attribute.Int64("loan_id", int64(id)))

	// 只有登记归还日期时才需要知道之前是否未结
	wasOpen := false
	if patch.Returns() {
		before, err := uc.loans.Get(ctx, id)
		if err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		wasOpen = before.IsOpen()
	}

	updated, err := uc.loans.Update(ctx, id, patch)
	tracing.RecordError(span, err)
	if err != nil {
		return nil, err
	}

	if wasOpen && !updated.IsOpen() {
		metrics.LoansReturnedTotal.Inc()
		uc.log.Info("book returned",
			zap.Uint("loan_id", updated.ID),
			zap.Uint("book_id", updated.BookID),
			zap.Time("return_date", *updated.ReturnDate),
		)
		publish(ctx, uc.events, uc.log, loan.NewEvent(loan.EventReturned, updated, uc.now()))
	}
	return updated, nil
}
