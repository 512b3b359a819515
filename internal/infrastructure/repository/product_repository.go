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

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Preload("Category").Preload("Supplier").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Preload("Category").Preload("Supplier").
		First(&product, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

// GetByIDs retrieves multiple products by their IDs in a single query
func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	var products []*entity.Product
	err := dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) List(ctx context.Context, filter domainRepo.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	var products []*entity.Product
	var total int64

	query := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Product{}).
		Scopes(StoreScope(ctx))

	if filter.Search != "" {
		query = query.Where("name ILIKE ? OR product_code ILIKE ? OR batch_code ILIKE ?",
			"%"+filter.Search+"%", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}

	if filter.InStock {
		query = query.Where("quantity > 0 AND (expire_date IS NULL OR expire_date >= CURRENT_DATE)")
	}

	if filter.LowStock {
		query = query.Where("quantity <= alert_qty")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).
		Preload("Category").Preload("Supplier").
		Order("name ASC").
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return dbFrom(ctx, r.db).WithContext(ctx).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Delete(&entity.Product{}, "id = ?", id).Error
}

// DecrementStock atomically reduces quantity only if sufficient stock exists.
// Uses: UPDATE products SET quantity = quantity - qty WHERE id = ? AND quantity >= qty
func (r *productRepository) DecrementStock(ctx context.Context, productID uuid.UUID, qty int) error {
	result := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Product{}).
		Where("id = ? AND quantity >= ?", productID, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) Restock(ctx context.Context, productID uuid.UUID, qty int) error {
	result := dbFrom(ctx, r.db).WithContext(ctx).Model(&entity.Product{}).
		Scopes(StoreScope(ctx)).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", qty),
			"restock_date": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) domainRepo.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	err := r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		First(&category, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	err := r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(StoreScope(ctx)).
		Delete(&entity.Category{}, "id = ?", id).Error
}
