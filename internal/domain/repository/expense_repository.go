package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Expense, int64, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
