package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	domainRepo "github.com/dukapoint/dukapoint-api/internal/domain/repository"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) List(ctx context.Context, from, to *time.Time, limit, offset int) ([]*entity.Expense, int64, error) {
	var expenses []*entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(StoreScope(ctx))

	if from != nil {
		query = query.Where("spent_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("spent_at <= ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).
		Order("spent_at DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Delete(&entity.Expense{}, "id = ?", id).Error
}
