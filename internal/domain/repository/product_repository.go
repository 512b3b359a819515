package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	InStock    bool // only sellable products: quantity above zero and not expired
	LowStock   bool // quantity at or below the alert threshold
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically reduces quantity, failing the line when fewer
	// than qty units remain. It runs inside the committing transaction.
	DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error

	// Restock adds qty units and stamps the restock date.
	Restock(ctx context.Context, productID uuid.UUID, qty int) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
