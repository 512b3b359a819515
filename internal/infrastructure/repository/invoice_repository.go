package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	domainRepo "github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	err := dbFrom(ctx, r.db).WithContext(ctx).Create(invoice).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.ErrDuplicateInvoiceNo
	}
	return err
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Preload("Items").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Preload("Items").
		First(&invoice, "invoice_no = ?", invoiceNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

// List returns invoices newest first using a created_at cursor.
// It fetches limit+1 rows so the caller can detect whether more remain.
func (r *invoiceRepository) List(ctx context.Context, filter domainRepo.InvoiceFilter, cursor *time.Time, limit int) ([]*entity.Invoice, error) {
	var invoices []*entity.Invoice

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(StoreScope(ctx))

	if filter.Search != "" {
		query = query.Where("invoice_no ILIKE ? OR customer_name ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if filter.IsCredit != nil {
		query = query.Where("is_credit = ?", *filter.IsCredit)
	}

	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", *filter.DateFrom)
	}

	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", *filter.DateTo)
	}

	if cursor != nil {
		query = query.Where("created_at < ?", *cursor)
	}

	err := query.Limit(limit + 1).
		Preload("Items").
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, err
}

func (r *invoiceRepository) ListCreditors(ctx context.Context, limit, offset int) ([]*entity.Invoice, int64, error) {
	var invoices []*entity.Invoice
	var total int64

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(StoreScope(ctx)).
		Where("is_credit = ? AND due_amount > 0", true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Delete(&entity.Invoice{}, "id = ?", id).Error
}
