package auth

import (
	"context"
	"errors"
	"testing"

	"profile-folio/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type mockCredentialRepo struct {
	byEmail map[string]repository.Credential

	createErr error
	existsErr error
}

func newMockCredentialRepo() *mockCredentialRepo {
	return &mockCredentialRepo{byEmail: map[string]repository.Credential{}}
}

func (m *mockCredentialRepo) Create(_ context.Context, c repository.Credential) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmail[c.Email] = c
	return nil
}

func (m *mockCredentialRepo) FindByEmail(_ context.Context, email string) (repository.Credential, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return repository.Credential{}, repository.ErrCredentialNotFound
	}
	return c, nil
}

func (m *mockCredentialRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func TestService_Register_StoresLowercasedEmailAndHash(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewService(repo)

	err := svc.Register(context.Background(), RegisterInput{Email: "  Alice@Example.COM ", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	c, ok := repo.byEmail["alice@example.com"]
	if !ok {
		t.Fatalf("credential not stored under lowercased email")
	}
	if c.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewService(repo)

	if err := svc.Register(context.Background(), RegisterInput{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	err := svc.Register(context.Background(), RegisterInput{Email: "ALICE@example.com", Password: "other-pass"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := NewService(newMockCredentialRepo())

	err := svc.Register(context.Background(), RegisterInput{Email: "alice@example.com", Password: "12345"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Login(t *testing.T) {
	repo := newMockCredentialRepo()
	svc := NewService(repo)

	if err := svc.Register(context.Background(), RegisterInput{Email: "alice@example.com", Password: "secret1"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	c, err := svc.Login(context.Background(), LoginInput{Email: "Alice@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", c.Email)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "alice@example.com", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
