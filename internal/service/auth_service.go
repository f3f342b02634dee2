package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mining-map-api/internal/auth"
	"mining-map-api/internal/models"
	"mining-map-api/internal/repository"

	"github.com/google/uuid"
)

// UserRepository is the account storage the auth service needs.
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u models.User) error
	EnsureUser(ctx context.Context, u models.User) (bool, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, changes repository.UserChanges) error
	DeleteUser(ctx context.Context, id string) error
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Create(username, role, userID string) (string, error)
}

// AuthService handles logins and account management.
type AuthService struct {
	repo   UserRepository
	tokens TokenIssuer
}

// NewAuthService creates an auth service.
func NewAuthService(repo UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Login checks the credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	u, err := s.repo.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("service: failed to load user: %w", err)
	}

	if !auth.CheckPassword(creds.Password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Create(u.Username, u.Role, u.ID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return &models.Session{
		AccessToken: token,
		TokenType:   "bearer",
		Username:    u.Username,
		Role:        u.Role,
		ID:          u.ID,
	}, nil
}

// Register creates an account. The role defaults to user.
func (s *AuthService) Register(ctx context.Context, in models.NewUser) (*models.User, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	role := in.Role
	if role == "" {
		role = models.RoleUser
	}
	if !validRole(role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("service: failed to hash password: %w", err)
	}

	u := models.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("service: failed to create user: %w", err)
	}
	return &u, nil
}

// EnsureAdmin seeds an admin account when username is not taken and reports
// whether it was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("service: failed to hash password: %w", err)
	}

	created, err := s.repo.EnsureUser(ctx, models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("service: failed to seed admin: %w", err)
	}
	return created, nil
}

// ListUsers returns all accounts, newest first.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the non-empty fields of in. It reports false when there
// was nothing to change.
func (s *AuthService) UpdateUser(ctx context.Context, id string, in models.UserUpdate) (bool, error) {
	var changes repository.UserChanges

	if in.Username != nil && *in.Username != "" {
		changes.Username = in.Username
	}
	if in.Role != nil && *in.Role != "" {
		if !validRole(*in.Role) {
			return false, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *in.Role)
		}
		changes.Role = in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return false, fmt.Errorf("service: failed to hash password: %w", err)
		}
		changes.PasswordHash = &hash
	}

	if changes.Empty() {
		return false, nil
	}

	if err := s.repo.UpdateUser(ctx, id, changes); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return false, ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return false, ErrConflict
		}
		return false, fmt.Errorf("service: failed to update user: %w", err)
	}
	return true, nil
}

// DeleteUser removes an account.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("service: failed to delete user: %w", err)
	}
	return nil
}

func validRole(role string) bool {
	return role == models.RoleAdmin || role == models.RoleUser
}
