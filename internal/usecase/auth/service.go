package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"profile-folio/internal/repository"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type RegisterInput struct {
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type Service struct {
	credentials repository.CredentialRepository
}

func NewService(credentials repository.CredentialRepository) *Service {
	return &Service{credentials: credentials}
}

func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	email := normalizeEmail(in.Email)
	if email == "" {
		return ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < 6 {
		return ErrInvalidInput
	}

	exists, err := s.credentials.ExistsByEmail(ctx, email)
	if err != nil {
		return ErrInternal
	}
	if exists {
		return ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}

	c := repository.Credential{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.credentials.Create(ctx, c); err != nil {
		// lost the race against a concurrent registration
		exists, exErr := s.credentials.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return ErrEmailAlreadyRegistered
		}
		return ErrInternal
	}

	return nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (repository.Credential, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.Credential{}, ErrInvalidCredentials
	}

	c, err := s.credentials.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return repository.Credential{}, ErrInvalidCredentials
		}
		return repository.Credential{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Credential{}, ErrInvalidCredentials
	}

	return c, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}
