package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
)

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	Search   string // matches invoice number or customer name
	IsCredit *bool
	DateFrom *time.Time
	DateTo   *time.Time
}

// InvoiceRepository defines the interface for invoice data access
type InvoiceRepository interface {
	// Create persists the invoice with its items. A clash on the generated
	// invoice number surfaces as apperror.ErrDuplicateInvoiceNo.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Invoice, error)
	List(ctx context.Context, filter InvoiceFilter, cursor *time.Time, limit int) ([]*entity.Invoice, error)
	ListCreditors(ctx context.Context, limit, offset int) ([]*entity.Invoice, int64, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}
