package services

import (
	"errors"
	"fmt"

	"shopease/internal/auth"
	"shopease/internal/models"
	"shopease/internal/utils"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(id int, req *models.UserUpdateRequest) (*models.User, error)
}

// AuthService handles registration, login and token verification
type AuthService struct {
	userRepo UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a new user account and issues a token for it.
// Self-registration always produces a regular user; admin accounts are
// created through the create-admin tool.
func (s *AuthService) Register(req *models.UserCreateRequest) (*AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, models.ErrEmailExists
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	req.Role = models.RoleUser
	user, err := s.userRepo.Create(req, passwordHash)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

// Login authenticates a user by credentials and issues a token
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	var errs models.ValidationErrors
	if req.Email == "" {
		errs = errs.Add("email is required")
	}
	if req.Password == "" {
		errs = errs.Add("password is required")
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

// VerifyToken validates a bearer token and resolves it to a live user, so
// role changes and deletions take effect on the next request.
func (s *AuthService) VerifyToken(token string) (*models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetProfile returns the user's profile
func (s *AuthService) GetProfile(userID int) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

// UpdateProfile applies a partial profile update
func (s *AuthService) UpdateProfile(userID int, req *models.UserUpdateRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.userRepo.Update(userID, req)
}
