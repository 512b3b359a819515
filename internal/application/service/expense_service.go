package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	infraRepo "github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
)

// ExpenseService handles expense tracking
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// ExpenseInput represents the create/update expense input
type ExpenseInput struct {
	Title       string
	Description *string
	Amount      int64 // cents
	SpentAt     time.Time
}

// CreateExpense records an expense against the caller's store
func (s *ExpenseService) CreateExpense(ctx context.Context, userID uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	if input.Amount <= 0 {
		return nil, apperror.NewValidationError("Amount must be greater than zero", nil)
	}

	spentAt := input.SpentAt
	if spentAt.IsZero() {
		spentAt = time.Now()
	}

	expense := &entity.Expense{
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		SpentAt:     spentAt,
		UserID:      userID,
		StoreID:     storeID,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns a page of expenses, optionally bounded by date.
func (s *ExpenseService) ListExpenses(ctx context.Context, from, to *time.Time, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Expense], error) {
	params.Validate()

	expenses, total, err := s.expenseRepo.List(ctx, from, to, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(expenses, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateExpense updates an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Title != "" {
		expense.Title = input.Title
	}
	if input.Description != nil {
		expense.Description = input.Description
	}
	if input.Amount > 0 {
		expense.Amount = input.Amount
	}
	if !input.SpentAt.IsZero() {
		expense.SpentAt = input.SpentAt
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}
