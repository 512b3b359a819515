package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dukapoint/dukapoint-api/internal/domain/entity"
	"github.com/dukapoint/dukapoint-api/internal/domain/repository"
	"github.com/dukapoint/dukapoint-api/pkg/apperror"
	"github.com/dukapoint/dukapoint-api/pkg/oauth"
	"github.com/dukapoint/dukapoint-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	roleRepo    repository.RoleRepository
	storeRepo   repository.StoreRepository
	jwtManager  *utils.JWTManager
	googleOAuth *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	storeRepo repository.StoreRepository,
	jwtManager *utils.JWTManager,
	googleOAuth *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		roleRepo:    roleRepo,
		storeRepo:   storeRepo,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(
		user.ID, user.Email, user.DisplayName(), user.RoleNames(), user.StoreID, user.Store.Name)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	StoreID   uuid.UUID
}

// Register creates a new cashier account in the given store
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existingUser, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	store, err := s.storeRepo.GetByID(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperror.NewNotFoundError("Store")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		StoreID:   store.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// New accounts start as cashiers
	if err := s.userRepo.AssignRole(ctx, user.ID, "cashier"); err != nil {
		return user, nil
	}

	return user, nil
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// UpdateProfileInput represents the profile update input
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Photo     *string
}

// UpdateProfile applies partial updates to the caller's own profile
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the user's password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// GoogleAuthURL returns the Google consent page URL.
func (s *AuthService) GoogleAuthURL(state string) string {
	return s.googleOAuth.GetAuthURL(state)
}

// GoogleLogin exchanges the OAuth code and signs the user in, creating the
// account on first login. Google accounts join the default store as cashiers.
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	token, err := s.googleOAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.NewBadRequestError("Invalid authorization code")
	}

	info, err := s.googleOAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, apperror.NewBadRequestError("Could not fetch Google profile")
	}

	user, err := s.userRepo.GetByProviderID(ctx, "google", info.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Fall back to email match so an existing local account gets linked
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.Provider = "google"
			user.ProviderID = &info.ID
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
		}
	}

	if user == nil {
		stores, err := s.storeRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(stores) == 0 {
			return nil, apperror.NewBadRequestError("No store configured for new accounts")
		}

		user = &entity.User{
			FirstName:  info.GivenName,
			LastName:   info.FamilyName,
			Email:      info.Email,
			Provider:   "google",
			ProviderID: &info.ID,
			Photo:      &info.Picture,
			StoreID:    stores[0].ID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		_ = s.userRepo.AssignRole(ctx, user.ID, "cashier")
	}

	// Reload with roles and store for token claims
	user, err = s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}
