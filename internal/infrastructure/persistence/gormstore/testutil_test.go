package gormstore

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/author"
	"github.com/xiebiao/library/internal/domain/book"
	"github.com/xiebiao/library/internal/domain/category"
	"github.com/xiebiao/library/internal/domain/loan"
	"github.com/xiebiao/library/internal/domain/patron"
	"github.com/xiebiao/library/internal/infrastructure/config"
)

// newTestDB 每个测试一个独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:   config.DriverSQLite,
			Path:     fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			LogLevel: "silent",
		},
	}
	db, err := NewDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

type stores struct {
	db         *gorm.DB
	tx         *TxManager
	authors    author.Repository
	categories category.Repository
	books      book.Repository
	patrons    patron.Repository
	loans      loan.Repository
}

func newStores(t *testing.T) stores {
	db := newTestDB(t)
	return stores{
		db:         db,
		tx:         NewTxManager(db),
		authors:    NewAuthorRepository(db),
		categories: NewCategoryRepository(db),
		books:      NewBookRepository(db),
		patrons:    NewPatronRepository(db),
		loans:      NewLoanRepository(db),
	}
}

func ptr[T any](v T) *T { return &v }

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
