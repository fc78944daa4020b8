package shared

import (
	"strings"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// Required 字符串去掉空白后不能为空
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperrors.Validationf("%s不能为空", field)
	}
	return nil
}

// RequiredIfSet 补丁中出现的必填字段同样不能为空
func RequiredIfSet(field string, value *string) error {
	if value == nil {
		return nil
	}
	return Required(field, *value)
}

// RequiredID 引用ID必须大于0
func RequiredID(field string, id uint) error {
	if id == 0 {
		return apperrors.Validationf("%s不能为空", field)
	}
	return nil
}

// FirstError 返回第一个非nil错误
func FirstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
