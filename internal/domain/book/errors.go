package book

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrISBNDuplicate ISBN已存在
	ErrISBNDuplicate = apperrors.New(apperrors.KindConstraint, apperrors.ErrCodeISBNDuplicate, "ISBN号已存在")

	// ErrAuthorRefNotFound 引用的作者不存在
	ErrAuthorRefNotFound = apperrors.New(apperrors.KindForeignKey, apperrors.ErrCodeForeignKey, "引用的作者不存在")

	// ErrCategoryRefNotFound 引用的分类不存在
	ErrCategoryRefNotFound = apperrors.New(apperrors.KindForeignKey, apperrors.ErrCodeForeignKey, "引用的分类不存在")
)
