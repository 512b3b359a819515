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
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// ProductService handles product and category operations
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name        string
	BatchCode   string
	Description *string
	Price       int64 // cents
	CostPrice   int64 // cents
	VatPercent  int
	Quantity    int
	AlertQty    int
	Unit        string
	ExpireDate  *time.Time
	CategoryID  uuid.UUID
	SupplierID  *uuid.UUID
}

// CreateProduct creates a new product in the caller's store
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	if input.Price < 0 || input.CostPrice < 0 {
		return nil, apperror.NewValidationError("Prices cannot be negative", nil)
	}
	if input.VatPercent < 0 || input.VatPercent > 100 {
		return nil, apperror.NewValidationError("VAT percent must be between 0 and 100", nil)
	}
	if input.Quantity < 0 {
		return nil, apperror.NewValidationError("Quantity cannot be negative", nil)
	}

	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
	}

	alertQty := input.AlertQty
	if alertQty <= 0 {
		alertQty = 5
	}
	unit := input.Unit
	if unit == "" {
		unit = "pcs"
	}

	product := &entity.Product{
		Name:        input.Name,
		Slug:        utils.Slugify(input.Name),
		ProductCode: utils.GenerateProductCode(),
		BatchCode:   input.BatchCode,
		Description: input.Description,
		Price:       input.Price,
		CostPrice:   input.CostPrice,
		VatPercent:  input.VatPercent,
		Quantity:    input.Quantity,
		AlertQty:    alertQty,
		Unit:        unit,
		ExpireDate:  input.ExpireDate,
		CategoryID:  input.CategoryID,
		SupplierID:  input.SupplierID,
		StoreID:     storeID,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct returns one product by ID.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// GetProductBySlug returns one product by slug.
func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// ListProducts returns a page of products matching the filter.
func (s *ProductService) ListProducts(ctx context.Context, filter repository.ProductFilter, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Product], error) {
	params.Validate()

	products, total, err := s.productRepo.List(ctx, filter, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(products, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// SearchSellable returns in-stock, unexpired products matching the query.
// This backs the till's product lookup.
func (s *ProductService) SearchSellable(ctx context.Context, query string, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Product], error) {
	return s.ListProducts(ctx, repository.ProductFilter{Search: query, InStock: true}, params)
}

// ListLowStock returns products at or below their alert threshold.
func (s *ProductService) ListLowStock(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Product], error) {
	return s.ListProducts(ctx, repository.ProductFilter{LowStock: true}, params)
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name        *string
	BatchCode   *string
	Description *string
	Price       *int64
	CostPrice   *int64
	VatPercent  *int
	AlertQty    *int
	Unit        *string
	ExpireDate  *time.Time
	CategoryID  *uuid.UUID
	SupplierID  *uuid.UUID
}

// UpdateProduct applies partial updates to a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
		product.Slug = utils.Slugify(*input.Name)
	}
	if input.BatchCode != nil {
		product.BatchCode = *input.BatchCode
	}
	if input.Description != nil {
		product.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError("Price cannot be negative", nil)
		}
		product.Price = *input.Price
	}
	if input.CostPrice != nil {
		if *input.CostPrice < 0 {
			return nil, apperror.NewValidationError("Cost price cannot be negative", nil)
		}
		product.CostPrice = *input.CostPrice
	}
	if input.VatPercent != nil {
		if *input.VatPercent < 0 || *input.VatPercent > 100 {
			return nil, apperror.NewValidationError("VAT percent must be between 0 and 100", nil)
		}
		product.VatPercent = *input.VatPercent
	}
	if input.AlertQty != nil {
		product.AlertQty = *input.AlertQty
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.ExpireDate != nil {
		product.ExpireDate = input.ExpireDate
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		product.CategoryID = *input.CategoryID
	}
	if input.SupplierID != nil {
		supplier, err := s.supplierRepo.GetByID(ctx, *input.SupplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, apperror.NewNotFoundError("Supplier")
		}
		product.SupplierID = input.SupplierID
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// RestockProduct adds stock and stamps the restock date.
func (s *ProductService) RestockProduct(ctx context.Context, slug string, qty int) (*entity.Product, error) {
	if qty <= 0 {
		return nil, apperror.NewValidationError("Restock quantity must be greater than zero", nil)
	}

	product, err := s.productRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if err := s.productRepo.Restock(ctx, product.ID, qty); err != nil {
		return nil, err
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

// DeleteProduct removes a product.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// CreateCategory creates a new category in the caller's store
func (s *ProductService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	existing, err := s.categoryRepo.GetBySlug(ctx, utils.Slugify(name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{
		Name:    name,
		Slug:    utils.Slugify(name),
		StoreID: storeID,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories returns the store's categories.
func (s *ProductService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// UpdateCategory renames a category.
func (s *ProductService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = name
	category.Slug = utils.Slugify(name)
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category.
func (s *ProductService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
