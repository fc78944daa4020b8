package loan

import (
	"context"
	"time"
)

// 借阅事件的routing key
const (
	EventCheckedOut = "loan.checked_out"
	EventReturned   = "loan.returned"
)

// Event 借阅领域事件，在事务提交后发布
type Event struct {
	Type         string    `json:"type"`
	LoanID       uint      `json:"loan_id"`
	PatronID     uint      `json:"patron_id"`
	BookID       uint      `json:"book_id"`
	CheckoutDate string    `json:"checkout_date"`
	ReturnDate   *string   `json:"return_date"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewEvent 由借阅记录生成事件
func NewEvent(eventType string, l *Loan, at time.Time) Event {
	ev := Event{
		Type:         eventType,
		LoanID:       l.ID,
		PatronID:     l.PatronID,
		BookID:       l.BookID,
		CheckoutDate: l.CheckoutDate.Format(DateLayout),
		OccurredAt:   at.UTC(),
	}
	if l.ReturnDate != nil {
		s := l.ReturnDate.Format(DateLayout)
		ev.ReturnDate = &s
	}
	return ev
}

// EventPublisher 事件发布接口，由基础设施层实现
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
