package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/shared"
)

// ListQuery 列表查询参数
// 不传时skip=0、limit=100，limit上限500
type ListQuery struct {
	Skip  int `form:"skip" binding:"min=0" example:"0"`
	Limit int `form:"limit" binding:"min=0" example:"100"`
}

// Params 转为领域分页参数
func (q ListQuery) Params() shared.ListParams {
	return shared.ListParams{Skip: q.Skip, Limit: q.Limit}.Normalize()
}

// Date 以 YYYY-MM-DD 传输的日期
type Date struct {
	time.Time
}

// NewDate 截断到UTC日期
func NewDate(t time.Time) Date {
	return Date{Time: loan.Day(t)}
}

// NewDatePtr nil安全的NewDate
func NewDatePtr(t *time.Time) *Date {
	if t == nil {
		return nil
	}
	d := NewDate(*t)
	return &d
}

// MarshalJSON 输出 "2024-03-01"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(loan.DateLayout) + `"`), nil
}

// UnmarshalJSON 只接受 YYYY-MM-DD
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) || len(s) < 2 {
		return fmt.Errorf("日期必须是字符串: %s", s)
	}
	t, err := loan.ParseDate(s[1 : len(s)-1])
	if err != nil {
		return fmt.Errorf("日期格式应为YYYY-MM-DD: %w", err)
	}
	d.Time = t
	return nil
}
