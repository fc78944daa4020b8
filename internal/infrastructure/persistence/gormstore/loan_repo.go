package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/loan"
)

// loanRepository 借阅仓储实现
// loans表唯一的业务唯一索引是uk_loans_open_book，冲突即图书已借出
type loanRepository struct {
	*crudRepository[loan.Loan, loan.Patch, LoanModel]
}

// NewLoanRepository 创建借阅仓储
func NewLoanRepository(db *gorm.DB) loan.Repository {
	return &loanRepository{
		crudRepository: &crudRepository[loan.Loan, loan.Patch, LoanModel]{
			db:        db,
			tx:        NewTxManager(db),
			resource:  "借阅记录",
			notFound:  loan.ErrLoanNotFound,
			toEntity:  toLoanEntity,
			toModel:   toLoanModel,
			apply:     (*loan.Loan).Apply,
			checkRefs: checkLoanRefs,
			translate: func(err error) error {
				if isDuplicateError(err) {
					return loan.ErrBookOnLoan.WithCause(err)
				}
				return nil
			},
		},
	}
}

// LockBook 锁定图书行
// 执行:SELECT id FROM books WHERE id = ? LIMIT 1 FOR UPDATE
// 同一本书的并发借出会在这里等待前一个事务提交
func (r *loanRepository) LockBook(ctx context.Context, bookID uint) error {
	var row struct{ ID uint }
	err := forUpdate(r.conn(ctx)).
		Model(&BookModel{}).
		Select("id").
		Where("id = ?", bookID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return loan.ErrBookRefNotFound
		}
		return dbError(err, "锁定图书失败")
	}
	return nil
}

// HasOpenLoan 是否存在未归还的借阅
func (r *loanRepository) HasOpenLoan(ctx context.Context, bookID uint) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&LoanModel{}).
		Where("book_id = ? AND return_date IS NULL", bookID).
		Count(&count).Error
	if err != nil {
		return false, dbError(err, "查询借阅状态失败")
	}
	return count > 0, nil
}

func checkLoanRefs(db *gorm.DB, l *loan.Loan) error {
	if err := ensureExists(db, &PatronModel{}, l.PatronID, loan.ErrPatronRefNotFound); err != nil {
		return err
	}
	return ensureExists(db, &BookModel{}, l.BookID, loan.ErrBookRefNotFound)
}

func toLoanEntity(m *LoanModel) *loan.Loan {
	return &loan.Loan{
		ID:           m.ID,
		PatronID:     m.PatronID,
		BookID:       m.BookID,
		CheckoutDate: loan.Day(m.CheckoutDate),
		ReturnDate:   loan.DayPtr(m.ReturnDate),
	}
}

func toLoanModel(l *loan.Loan) *LoanModel {
	m := &LoanModel{
		ID:           l.ID,
		PatronID:     l.PatronID,
		BookID:       l.BookID,
		CheckoutDate: loan.Day(l.CheckoutDate),
		ReturnDate:   loan.DayPtr(l.ReturnDate),
	}
	if l.IsOpen() {
		bookID := l.BookID
		m.OpenBookID = &bookID
	}
	return m
}
