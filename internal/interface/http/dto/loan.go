package dto

import (
	"time"

	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/pkg/optional"
)

// CreateLoanRequest 借出，return_date为空表示未归还
type CreateLoanRequest struct {
	PatronID     uint  `json:"patron_id" binding:"required" example:"1"`
	BookID       uint  `json:"book_id" binding:"required" example:"1"`
	CheckoutDate *Date `json:"checkout_date" binding:"required" swaggertype:"string" example:"2024-03-01"`
	ReturnDate   *Date `json:"return_date" swaggertype:"string" example:"2024-03-15"`
}

// ToEntity 转为领域实体
func (r CreateLoanRequest) ToEntity() *loan.Loan {
	var ret *time.Time
	if r.ReturnDate != nil {
		ret = &r.ReturnDate.Time
	}
	return loan.NewLoan(r.PatronID, r.BookID, r.CheckoutDate.Time, ret)
}

// UpdateLoanRequest 借阅部分更新
// return_date传日期表示归还，传null表示重新借出
type UpdateLoanRequest struct {
	PatronID     *uint                   `json:"patron_id"`
	BookID       *uint                   `json:"book_id"`
	CheckoutDate *Date                   `json:"checkout_date" swaggertype:"string"`
	ReturnDate   optional.Nullable[Date] `json:"return_date" swaggertype:"string"`
}

// ToPatch 转为领域补丁
func (r UpdateLoanRequest) ToPatch() loan.Patch {
	p := loan.Patch{PatronID: r.PatronID, BookID: r.BookID}
	if r.CheckoutDate != nil {
		t := r.CheckoutDate.Time
		p.CheckoutDate = &t
	}
	switch {
	case r.ReturnDate.Valid:
		p.ReturnDate = optional.Of(r.ReturnDate.Value.Time)
	case r.ReturnDate.Set:
		p.ReturnDate = optional.Null[time.Time]()
	}
	return p
}

// LoanResponse 借阅记录
type LoanResponse struct {
	ID           uint  `json:"id" example:"1"`
	PatronID     uint  `json:"patron_id" example:"1"`
	BookID       uint  `json:"book_id" example:"1"`
	CheckoutDate Date  `json:"checkout_date" swaggertype:"string" example:"2024-03-01"`
	ReturnDate   *Date `json:"return_date" swaggertype:"string" example:"2024-03-15"`
}

// NewLoanResponse 转换
func NewLoanResponse(l *loan.Loan) *LoanResponse {
	return &LoanResponse{
		ID:           l.ID,
		PatronID:     l.PatronID,
		BookID:       l.BookID,
		CheckoutDate: NewDate(l.CheckoutDate),
		ReturnDate:   NewDatePtr(l.ReturnDate),
	}
}

// NewLoanList 转换列表
func NewLoanList(items []*loan.Loan) []*LoanResponse {
	out := make([]*LoanResponse, 0, len(items))
	for _, l := range items {
		out = append(out, NewLoanResponse(l))
	}
	return out
}
