package usecase

import (
	"context"
	"errors"
	"testing"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	byID map[uuid.UUID]repository.Profile
}

func newMockProfileRepo() *mockProfileRepo {
	return &mockProfileRepo{byID: map[uuid.UUID]repository.Profile{}}
}

func (m *mockProfileRepo) Create(_ context.Context, p repository.Profile) (repository.Profile, error) {
	m.byID[p.ID] = p
	return p, nil
}

func (m *mockProfileRepo) Update(_ context.Context, p repository.Profile) (repository.Profile, error) {
	if _, ok := m.byID[p.ID]; !ok {
		return repository.Profile{}, repository.ErrProfileNotFound
	}
	m.byID[p.ID] = p
	return p, nil
}

func (m *mockProfileRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *mockProfileRepo) FindByEmail(_ context.Context, email string) (repository.Profile, error) {
	for _, p := range m.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

func (m *mockProfileRepo) FindByMobile(_ context.Context, mobile string) (repository.Profile, error) {
	for _, p := range m.byID {
		if p.MobileNumber != nil && *p.MobileNumber == mobile {
			return p, nil
		}
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

func (m *mockProfileRepo) FindFirst(_ context.Context) (repository.Profile, error) {
	for _, p := range m.byID {
		return p, nil
	}
	return repository.Profile{}, repository.ErrProfileNotFound
}

func TestProfileUsecase_Upsert_CreatesThenReplaces(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil)

	created, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:  "Alice",
		Email: "Alice@Example.com",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %q", created.Email)
	}

	updated, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:     "Alice B",
		Email:    "alice@example.com",
		Headline: "Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert must keep the existing row id")
	}
	if len(repo.byID) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(repo.byID))
	}
	if repo.byID[updated.ID].Name != "Alice B" {
		t.Fatalf("update not applied")
	}
}

func TestProfileUsecase_Upsert_ForbiddenForOtherEmail(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), nil)

	_, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProfileUsecase_Upsert_DuplicateMobile(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil)

	mobile := "08123456789"
	if _, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:         "Alice",
		Email:        "alice@example.com",
		MobileNumber: &mobile,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := uc.Upsert(context.Background(), "bob@example.com", ProfileInput{
		Name:         "Bob",
		Email:        "bob@example.com",
		MobileNumber: &mobile,
	})
	if !errors.Is(err, ErrDuplicateMobile) {
		t.Fatalf("expected ErrDuplicateMobile, got %v", err)
	}
}

func TestProfileUsecase_Upsert_MissingName(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), nil)

	_, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Email: "alice@example.com",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileUsecase_Resolve(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil)

	mobile := "08123456789"
	if _, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:         "Alice",
		Email:        "alice@example.com",
		MobileNumber: &mobile,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	byEmail, err := uc.Resolve(context.Background(), "ALICE@example.com", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if byEmail.Name != "Alice" {
		t.Fatalf("unexpected profile: %+v", byEmail)
	}

	byMobile, err := uc.Resolve(context.Background(), "", mobile)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if byMobile.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", byMobile)
	}

	// no identifier falls back to the first stored profile
	first, err := uc.Resolve(context.Background(), "", "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if first.Email != "alice@example.com" {
		t.Fatalf("unexpected profile: %+v", first)
	}
}

func TestProfileUsecase_Resolve_NotFound(t *testing.T) {
	uc := NewProfileUsecase(newMockProfileRepo(), nil)

	if _, err := uc.Resolve(context.Background(), "nobody@example.com", ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if _, err := uc.Resolve(context.Background(), "", ""); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestProfileUsecase_Delete(t *testing.T) {
	repo := newMockProfileRepo()
	uc := NewProfileUsecase(repo, nil)

	if _, err := uc.Upsert(context.Background(), "alice@example.com", ProfileInput{
		Name:  "Alice",
		Email: "alice@example.com",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("profile not deleted")
	}

	if err := uc.Delete(context.Background(), "alice@example.com"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
