package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/enum"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	infraRepo "github.com/dukapoint/dukapoint-api/internal/infrastructure/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// SupplierService handles supplier operations
type SupplierService struct {
	supplierRepo repository.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// SupplierInput represents the create/update supplier input
type SupplierInput struct {
	Name    string
	Type    enum.SupplierType
	Phone   string
	Email   *string
	Address *string
}

// CreateSupplier creates a new supplier in the caller's store
func (s *SupplierService) CreateSupplier(ctx context.Context, input *SupplierInput) (*entity.Supplier, error) {
	storeID, ok := infraRepo.GetStoreID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Store context required")
	}

	supplier := &entity.Supplier{
		Name:    input.Name,
		Slug:    utils.Slugify(input.Name),
		Type:    input.Type,
		Phone:   input.Phone,
		Email:   input.Email,
		Address: input.Address,
		StoreID: storeID,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier returns one supplier by ID.
func (s *SupplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}
	return supplier, nil
}

// ListSuppliers returns a page of the store's suppliers.
func (s *SupplierService) ListSuppliers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.Supplier], error) {
	params.Validate()

	suppliers, total, err := s.supplierRepo.List(ctx, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(suppliers, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// UpdateSupplier updates a supplier
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input *SupplierInput) (*entity.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	if input.Name != "" {
		supplier.Name = input.Name
		supplier.Slug = utils.Slugify(input.Name)
	}
	if input.Type != "" {
		supplier.Type = input.Type
	}
	if input.Phone != "" {
		supplier.Phone = input.Phone
	}
	if input.Email != nil {
		supplier.Email = input.Email
	}
	if input.Address != nil {
		supplier.Address = input.Address
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// DeleteSupplier removes a supplier.
func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return apperror.NewNotFoundError("Supplier")
	}
	return s.supplierRepo.Delete(ctx, id)
}
