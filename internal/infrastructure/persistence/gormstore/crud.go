package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/shared"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// crudRepository 通用仓储实现
// E是领域实体，P是补丁，M是GORM模型
// 实体特有的行为通过钩子注入：引用校验、级联删除、写入错误转换
type crudRepository[E any, P any, M any] struct {
	db       *gorm.DB
	tx       *TxManager
	resource string // 日志和错误信息中的资源名
	notFound error

	toEntity func(*M) *E
	toModel  func(*E) *M
	apply    func(*E, P) error

	checkRefs func(db *gorm.DB, e *E) error
	cascade   func(db *gorm.DB, id uint) error
	translate func(err error) error
}

func (r *crudRepository[E, P, M]) conn(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db)
}

// List 按id升序分页
func (r *crudRepository[E, P, M]) List(ctx context.Context, params shared.ListParams) ([]*E, error) {
	var models []M
	err := r.conn(ctx).
		Order("id ASC").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&models).Error
	if err != nil {
		return nil, dbError(err, "查询%s列表失败", r.resource)
	}

	items := make([]*E, len(models))
	for i := range models {
		items[i] = r.toEntity(&models[i])
	}
	return items, nil
}

// FindByID 根据ID查找
func (r *crudRepository[E, P, M]) FindByID(ctx context.Context, id uint) (*E, error) {
	var model M
	if err := r.conn(ctx).First(&model, id).Error; err != nil {
		return nil, r.readError(err)
	}
	return r.toEntity(&model), nil
}

// Create 校验引用后插入，回填自增ID
func (r *crudRepository[E, P, M]) Create(ctx context.Context, e *E) error {
	return r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.conn(ctx)
		if r.checkRefs != nil {
			if err := r.checkRefs(db, e); err != nil {
				return err
			}
		}

		model := r.toModel(e)
		if err := db.Create(model).Error; err != nil {
			return r.writeError(err, "创建")
		}
		*e = *r.toEntity(model)
		return nil
	})
}

// Update 锁定行 → 合并补丁并校验 → 校验引用 → 写回全部业务字段
func (r *crudRepository[E, P, M]) Update(ctx context.Context, id uint, patch P) (*E, error) {
	var updated *E
	err := r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.conn(ctx)

		var current M
		if err := forUpdate(db).First(&current, id).Error; err != nil {
			return r.readError(err)
		}

		e := r.toEntity(&current)
		if err := r.apply(e, patch); err != nil {
			return err
		}
		if r.checkRefs != nil {
			if err := r.checkRefs(db, e); err != nil {
				return err
			}
		}

		// Select("*")保证nil字段也会写入NULL
		model := r.toModel(e)
		err := db.Model(&current).
			Select("*").
			Omit("id", "created_at").
			Updates(model).Error
		if err != nil {
			return r.writeError(err, "更新")
		}
		updated = r.toEntity(model)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete 先执行级联，再删除本行
func (r *crudRepository[E, P, M]) Delete(ctx context.Context, id uint) error {
	return r.tx.Transaction(ctx, func(ctx context.Context) error {
		db := r.conn(ctx)

		var current M
		if err := forUpdate(db).First(&current, id).Error; err != nil {
			return r.readError(err)
		}
		if r.cascade != nil {
			if err := r.cascade(db, id); err != nil {
				return dbError(err, "删除%s关联数据失败", r.resource)
			}
		}
		if err := db.Delete(&current).Error; err != nil {
			return dbError(err, "删除%s失败", r.resource)
		}
		return nil
	})
}

func (r *crudRepository[E, P, M]) readError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.notFound
	}
	return dbError(err, "查询%s失败", r.resource)
}

func (r *crudRepository[E, P, M]) writeError(err error, action string) error {
	if r.translate != nil {
		if domainErr := r.translate(err); domainErr != nil {
			return domainErr
		}
	}
	if isDuplicateError(err) {
		return apperrors.ErrDuplicateEntry.WithCause(err)
	}
	if isForeignKeyError(err) {
		return apperrors.ErrForeignKey.WithCause(err)
	}
	return dbError(err, "%s%s失败", action, r.resource)
}
