package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
)

type txKey struct{}

// dbFrom returns the transaction carried in ctx, or the fallback handle when
// the call is not running inside a unit of work.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback
}

type gormUnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork wraps the gorm handle as a repository.UnitOfWork.
func NewUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &gormUnitOfWork{db: db}
}

// Do opens a transaction and stashes it in the context handed to fn, so
// repository methods called inside fn read and write through the same
// transaction. fn returning an error rolls everything back.
func (u *gormUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
