package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, email, password string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Exists(ctx context.Context, email string) (bool, error)
	ListEmails(ctx context.Context) ([]string, error)
	ListRaw(ctx context.Context) ([]User, error)
}

type Service struct {
	repo      Repository
	hasher    Hasher
	validator Validator
	log       *slog.Logger
	now       func() time.Time
}

func NewService(repo Repository, hasher Hasher, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		hasher:    hasher,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// Register appends a new user. A second registration under the same email
// is accepted and stored as a separate record.
func (s *Service) Register(ctx context.Context, email, password string) (User, error) {
	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("validation failed", "email", email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, fmt.Errorf("save user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID.String())
	return u, nil
}

// Authenticate compares emails as given, case-sensitive, and checks the
// password against the first matching record.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		s.log.Warn("stored verifier is unusable", "user_id", u.ID.String(), "error", err)
		return User{}, err
	}
	if !ok {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) Exists(ctx context.Context, email string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("find user: %w", err)
	}
}

func (s *Service) ListEmails(ctx context.Context) ([]string, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	return emails, nil
}

// ListRaw returns stored records including password verifiers.
func (s *Service) ListRaw(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
