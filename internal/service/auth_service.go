package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/VictorHerdz10/ACRP-API/internal/auth"
	"github.com/VictorHerdz10/ACRP-API/internal/domain"
	"github.com/VictorHerdz10/ACRP-API/internal/repository"
	"github.com/VictorHerdz10/ACRP-API/pkg/util"
)

// AuthService coordinates registration, login, and account management.
// Tokens carry a snapshot of the role at issuance; UpdateRole does not
// touch tokens already in flight.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new account with the default non-admin role.
func (s *AuthService) Register(ctx context.Context, email, username, nameFull, password string) (*domain.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, util.NewValidationError("email is already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		NameFull:     nameFull,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token whose claims
// mirror the stored role at this moment.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, util.NewValidationError("user does not exist")
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, util.NewValidationError("incorrect password")
	}
	return s.tokens.Issue(user.ID, user.Email, user.Role)
}

// Profile returns the account behind the authenticated claims' email.
func (s *AuthService) Profile(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, util.NewValidationError("could not find user information")
		}
		return nil, err
	}
	return user, nil
}

// ListUsers returns every account.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateRole assigns a new role. Assigning the role the user already has
// is rejected so callers notice no-op updates.
func (s *AuthService) UpdateRole(ctx context.Context, id, role string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		return err
	}
	if user.Role == role {
		return util.NewValidationError("this role is already assigned to the user")
	}
	return s.users.UpdateRole(ctx, id, role)
}

// DeleteUser removes an account.
func (s *AuthService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return util.NewNotFound("user")
		}
		return err
	}
	return s.users.Delete(ctx, id)
}
