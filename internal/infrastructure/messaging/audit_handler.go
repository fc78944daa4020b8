package messaging

import (
	"context"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/mq"
	"github.com/xiebiao/library/pkg/textutil"
	"github.com/xiebiao/library/pkg/tracing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AuditHandler 把借阅事件写入审计日志
type AuditHandler struct {
	log *zap.Logger
}

// NewAuditHandler 创建审计处理器
func NewAuditHandler(log *zap.Logger) *AuditHandler {
	return &AuditHandler{log: log}
}

// Handle 实现mq.Handler
// 无法解析或类型未知的消息直接丢弃，避免反复重投
func (h *AuditHandler) Handle(ctx context.Context, msg mq.Message) error {
	var ev loan.Event
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		return fmt.Errorf("decode loan event %s (%s): %v: %w",
			msg.ID, textutil.Truncate(string(msg.Body), 64), err, mq.ErrDiscard)
	}
	if ev.Type != loan.EventCheckedOut && ev.Type != loan.EventReturned {
		return fmt.Errorf("unknown loan event type %q: %w", ev.Type, mq.ErrDiscard)
	}

	fields := []zap.Field{
		zap.String("event", ev.Type),
		zap.Uint("loan_id", ev.LoanID),
		zap.Uint("patron_id", ev.PatronID),
		zap.Uint("book_id", ev.BookID),
		zap.String("checkout_date", ev.CheckoutDate),
		zap.Time("occurred_at", ev.OccurredAt),
	}
	if ev.ReturnDate != nil {
		fields = append(fields, zap.String("return_date", *ev.ReturnDate))
	}
	// 面向馆员的可读日期
	if d, err := time.Parse(loan.DateLayout, ev.CheckoutDate); err == nil {
		fields = append(fields, zap.String("checkout_display", textutil.FormatDate(d)))
	}
	if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
		fields = append(fields, zap.String("trace_id", traceID))
	}
	h.log.Info("loan audit", fields...)
	return nil
}
