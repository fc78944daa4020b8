package patron

import (
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// 读者领域错误定义
var (
	// ErrPatronNotFound 读者不存在
	ErrPatronNotFound = apperrors.New(apperrors.KindNotFound, apperrors.ErrCodePatronNotFound, "读者不存在")

	// ErrEmailDuplicate 邮箱已被使用
	ErrEmailDuplicate = apperrors.New(apperrors.KindConstraint, apperrors.ErrCodeEmailDuplicate, "邮箱已被使用")
)
