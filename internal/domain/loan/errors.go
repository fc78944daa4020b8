package loan

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 借阅领域错误定义
var (
	// ErrLoanNotFound 借阅记录不存在
	ErrLoanNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeLoanNotFound, "借阅记录不存在")

	// ErrBookOnLoan 图书当前已借出
	ErrBookOnLoan = apperrors.New(apperrors.KindBusinessRule, apperrors.ErrCodeBookOnLoan, "图书当前已借出")

	// ErrReturnBeforeCheckout 归还日期早于借出日期
	ErrReturnBeforeCheckout = apperrors.New(apperrors.KindValidation, apperrors.ErrCodeInvalidDates, "归还日期不能早于借出日期")

	// ErrPatronRefNotFound 引用的读者不存在
	ErrPatronRefNotFound = apperrors.New(apperrors.KindForeignKey, apperrors.ErrCodeForeignKey, "引用的读者不存在")

	// ErrBookRefNotFound 引用的图书不存在
	ErrBookRefNotFound = apperrors.New(apperrors.KindForeignKey, apperrors.ErrCodeForeignKey, "引用的图书不存在")
)
