package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/pagination"
)

// UserService handles user management operations
type UserService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserService {
	return &UserService{userRepo: userRepo, roleRepo: roleRepo}
}

// ListUsers returns a page of the store's users.
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[*entity.User], error) {
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params.PerPage, params.Offset())
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(users, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetUser returns one user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// AssignRole grants a role to a user.
func (s *UserService) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return apperror.NewNotFoundError("Role")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	return s.userRepo.AssignRole(ctx, userID, roleName)
}

// DeleteUser removes a user account.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}
