package loan

import (
	"time"

	"github.com/xiebiao/library/internal/domain/shared"
	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/optional"
)

// DateLayout 借阅日期的文本格式
const DateLayout = "2006-01-02"

// Loan 借阅记录
// 业务规则:
// 1. ReturnDate为nil表示图书尚未归还(未结借阅)
// 2. 归还日期不能早于借出日期
// 3. 同一本书同一时刻最多一条未结借阅
type Loan struct {
	ID           uint
	PatronID     uint
	BookID       uint
	CheckoutDate time.Time
	ReturnDate   *time.Time
}

// NewLoan 创建借阅记录，日期统一截断到UTC零点
func NewLoan(patronID, bookID uint, checkout time.Time, returnDate *time.Time) *Loan {
	return &Loan{
		PatronID:     patronID,
		BookID:       bookID,
		CheckoutDate: Day(checkout),
		ReturnDate:   DayPtr(returnDate),
	}
}

// IsOpen 是否尚未归还
func (l *Loan) IsOpen() bool {
	return l.ReturnDate == nil
}

// Validate 引用和借出日期必填，日期顺序合法
func (l *Loan) Validate() error {
	if err := shared.FirstError(
		shared.RequiredID("patron_id", l.PatronID),
		shared.RequiredID("book_id", l.BookID),
	); err != nil {
		return err
	}
	if l.CheckoutDate.IsZero() {
		return apperrors.Validationf("checkout_date不能为空")
	}
	return CheckDateOrder(l.CheckoutDate, l.ReturnDate)
}

// Apply 合并补丁后按生效的借出日期重新校验日期顺序
func (l *Loan) Apply(p Patch) error {
	if p.PatronID != nil {
		l.PatronID = *p.PatronID
	}
	if p.BookID != nil {
		l.BookID = *p.BookID
	}
	if p.CheckoutDate != nil {
		l.CheckoutDate = Day(*p.CheckoutDate)
	}
	if p.ReturnDate.Set {
		l.ReturnDate = DayPtr(p.ReturnDate.Ptr())
	}
	return l.Validate()
}

// Patch 借阅部分更新
// ReturnDate显式null表示重新借出
type Patch struct {
	PatronID     *uint
	BookID       *uint
	CheckoutDate *time.Time
	ReturnDate   optional.Nullable[time.Time]
}

// Returns 补丁是否登记了归还日期
func (p Patch) Returns() bool {
	return p.ReturnDate.Set && p.ReturnDate.Valid
}

// Validate 仅基于提交的值校验；两个日期都提交时比较先后
func (p Patch) Validate() error {
	if p.PatronID != nil {
		if err := shared.RequiredID("patron_id", *p.PatronID); err != nil {
			return err
		}
	}
	if p.BookID != nil {
		if err := shared.RequiredID("book_id", *p.BookID); err != nil {
			return err
		}
	}
	if p.CheckoutDate != nil && p.CheckoutDate.IsZero() {
		return apperrors.Validationf("checkout_date不能为空")
	}
	if p.CheckoutDate != nil && p.ReturnDate.Valid {
		return CheckDateOrder(*p.CheckoutDate, p.ReturnDate.Ptr())
	}
	return nil
}

// CheckDateOrder 归还日期不早于借出日期，同一天合法
func CheckDateOrder(checkout time.Time, returnDate *time.Time) error {
	if returnDate == nil {
		return nil
	}
	if Day(*returnDate).Before(Day(checkout)) {
		return ErrReturnBeforeCheckout
	}
	return nil
}

// Day 截断到UTC日期
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayPtr nil安全的Day
func DayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Day(*t)
	return &d
}

// ParseDate 解析 YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
