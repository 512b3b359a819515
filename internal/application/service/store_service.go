package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// StoreService handles store operations
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// StoreInput represents the create/update store input
type StoreInput struct {
	Name    string
	Address *string
	Phone   *string
	Email   *string
	TaxID   *string
}

// CreateStore creates a new store
func (s *StoreService) CreateStore(ctx context.Context, input *StoreInput) (*entity.Store, error) {
	existing, err := s.storeRepo.GetBySlug(ctx, utils.Slugify(input.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Store already exists")
	}

	store := &entity.Store{
		Name:    input.Name,
		Slug:    utils.Slugify(input.Name),
		Address: input.Address,
		Phone:   input.Phone,
		Email:   input.Email,
		TaxID:   input.TaxID,
	}
	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// GetStore returns one store by ID.
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}
	return store, nil
}

// ListStores returns all stores.
func (s *StoreService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	return s.storeRepo.List(ctx)
}

// UpdateStore updates a store
func (s *StoreService) UpdateStore(ctx context.Context, id uuid.UUID, input *StoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	if input.Name != "" {
		store.Name = input.Name
		store.Slug = utils.Slugify(input.Name)
	}
	if input.Address != nil {
		store.Address = input.Address
	}
	if input.Phone != nil {
		store.Phone = input.Phone
	}
	if input.Email != nil {
		store.Email = input.Email
	}
	if input.TaxID != nil {
		store.TaxID = input.TaxID
	}

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// DeleteStore removes a store.
func (s *StoreService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return apperror.NewNotFoundError("Store")
	}
	return s.storeRepo.Delete(ctx, id)
}
