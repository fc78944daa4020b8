package gormstore

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// dbError 未识别的驱动错误统一为ErrDatabaseError，原始错误只进日志
func dbError(err error, format string, args ...interface{}) error {
	return apperrors.ErrDatabaseError.WithCause(fmt.Errorf(format+": %w", append(args, err)...))
}

// isDuplicateError 判断是否为唯一索引冲突
// - MySQL 1062: Duplicate entry 'xxx' for key 'yyy'
// - SQLite: UNIQUE constraint failed: table.column
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// isForeignKeyError 判断是否为外键约束失败
// 表结构不声明外键，这里兼容手工建表的库
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") || strings.Contains(msg, "a foreign key constraint fails")
}

// ensureExists 在当前事务内确认被引用的行存在，并加共享锁
func ensureExists(db *gorm.DB, model interface{}, id uint, notFound error) error {
	var row struct{ ID uint }
	err := forShare(db).Model(model).Select("id").Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
