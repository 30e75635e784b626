package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned on any login failure; it deliberately does
// not distinguish an unknown email from a wrong password.
var ErrInvalidCredentials = errors.New("invalid credentials")

const minPasswordLength = 6

// Service manages account lifecycle.
type Service struct {
	repo Repository
}

// NewService creates a new identity service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if email == "" || !strings.Contains(email, "@") {
		return User{}, errors.New("a valid email is required")
	}
	if len(reg.Password) < minPasswordLength {
		return User{}, errors.New("password must be at least 6 characters")
	}
	if strings.TrimSpace(reg.Name) == "" {
		return User{}, errors.New("name is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:            uuid.New().String(),
		Email:         email,
		PasswordHash:  hash,
		Name:          strings.TrimSpace(reg.Name),
		BirthDate:     reg.BirthDate,
		BirthTime:     reg.BirthTime,
		BirthLocation: reg.BirthLocation,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate verifies the email/password pair.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(creds.Password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Get fetches a user by id.
func (s *Service) Get(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial profile update.
func (s *Service) UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (User, error) {
	if err := s.repo.UpdateProfile(ctx, id, update); err != nil {
		return User{}, err
	}
	return s.repo.FindByID(ctx, id)
}

// ActivatePremium marks the user premium; it reports whether this call made
// the transition so callers can act exactly once on the upgrade.
func (s *Service) ActivatePremium(ctx context.Context, id string) (bool, error) {
	return s.repo.SetPremium(ctx, id, time.Now().UTC())
}
