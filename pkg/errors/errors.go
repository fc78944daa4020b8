package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类
// 调用方按Kind决定处理方式，HTTP层按Kind映射状态码
type Kind int

const (
	KindInternal     Kind = iota // 系统内部错误
	KindNotFound                 // 记录不存在
	KindValidation               // 字段校验失败（必填、日期顺序、参数格式）
	KindConstraint               // 唯一约束冲突
	KindForeignKey               // 引用的记录不存在
	KindBusinessRule             // 业务规则不满足（如图书已借出）
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation_error"
	case KindConstraint:
		return "constraint_violation"
	case KindForeignKey:
		return "foreign_key_violation"
	case KindBusinessRule:
		return "business_rule_violation"
	default:
		return "internal"
	}
}

// HTTPStatus Kind对应的HTTP状态码
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation, KindForeignKey:
		return http.StatusUnprocessableEntity
	case KindConstraint:
		return http.StatusConflict
	case KindBusinessRule:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// AppError 自定义应用错误
// 设计说明：
// 1. Kind是错误分类，Code是细分的业务错误码（前三位与HTTP状态码一致）
// 2. Message是用户友好的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Kind    Kind   `json:"-"`
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(kind Kind, code int, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Validationf 创建字段校验错误
func Validationf(format string, args ...interface{}) *AppError {
	return New(KindValidation, ErrCodeValidation, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCause 复制预定义错误并附加底层原因
// errors.Is(返回值, e) 依然成立
func (e *AppError) WithCause(err error) error {
	return &causedError{AppError: AppError{Kind: e.Kind, Code: e.Code, Message: e.Message, Err: err}, origin: e}
}

type causedError struct {
	AppError
	origin *AppError
}

func (c *causedError) Is(target error) bool {
	return target == c.origin
}

func (c *causedError) As(target interface{}) bool {
	if p, ok := target.(**AppError); ok {
		*p = &c.AppError
		return true
	}
	return false
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位即HTTP状态码
// - 400xx: 业务规则
// - 404xx: 资源不存在
// - 409xx: 唯一约束冲突
// - 422xx: 参数校验 / 引用不存在
// - 500xx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 业务规则错误（40000-40099）
	ErrCodeBusinessError = 40000 // 业务错误(通用)
	ErrCodeBookOnLoan    = 40001 // 图书已借出

	// 资源错误（40400-40499）
	ErrCodeNotFound         = 40400 // 资源不存在(通用)
	ErrCodeAuthorNotFound   = 40401 // 作者不存在
	ErrCodeCategoryNotFound = 40402 // 分类不存在
	ErrCodeBookNotFound     = 40403 // 图书不存在
	ErrCodePatronNotFound   = 40404 // 读者不存在
	ErrCodeLoanNotFound     = 40405 // 借阅记录不存在

	// 唯一约束（40900-40999）
	ErrCodeDuplicateEntry = 40900 // 重复记录(通用)
	ErrCodeISBNDuplicate  = 40901 // ISBN已存在
	ErrCodeEmailDuplicate = 40902 // 邮箱已存在
	ErrCodeCategoryDup    = 40903 // 分类名称已存在

	// 参数错误（42200-42299）
	ErrCodeValidation   = 42200 // 参数校验失败
	ErrCodeBindError    = 42201 // 参数绑定失败
	ErrCodeInvalidDates = 42202 // 归还日期早于借出日期
	ErrCodeInvalidID    = 42203 // ID格式错误
	ErrCodeForeignKey   = 42210 // 引用的记录不存在
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(KindInternal, ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(KindInternal, ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(KindInternal, ErrCodeRedisError, "缓存服务错误")

	ErrNotFound       = New(KindNotFound, ErrCodeNotFound, "资源不存在")
	ErrDuplicateEntry = New(KindConstraint, ErrCodeDuplicateEntry, "记录已存在")
	ErrForeignKey     = New(KindForeignKey, ErrCodeForeignKey, "引用的记录不存在")

	ErrBindError = New(KindValidation, ErrCodeBindError, "参数格式错误")
	ErrInvalidID = New(KindValidation, ErrCodeInvalidID, "ID必须是正整数")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// KindOf 返回错误分类，非AppError一律视为Internal
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind 判断错误是否属于指定分类
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
