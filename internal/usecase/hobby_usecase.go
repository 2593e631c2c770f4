package usecase

import (
	"context"
	"errors"
	"strings"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

var ErrHobbyNotFound = errors.New("hobby not found")

type HobbyInput struct {
	HobbyName string
}

type HobbyUsecase interface {
	ListHobbies(ctx context.Context, email, mobile string) ([]repository.Hobby, error)
	AddHobby(ctx context.Context, authedEmail string, in HobbyInput) (repository.Hobby, error)
	UpdateHobby(ctx context.Context, authedEmail string, id uuid.UUID, in HobbyInput) (repository.Hobby, error)
	DeleteHobby(ctx context.Context, authedEmail string, id uuid.UUID) error
}

type HobbyService struct {
	hobbies  repository.HobbyRepository
	profiles repository.ProfileRepository
	cache    Cache
}

func NewHobbyUsecase(hobbies repository.HobbyRepository, profiles repository.ProfileRepository, c Cache) *HobbyService {
	return &HobbyService{hobbies: hobbies, profiles: profiles, cache: c}
}

func (u *HobbyService) ListHobbies(ctx context.Context, email, mobile string) ([]repository.Hobby, error) {
	email = normalizeIdentifier(email)
	mobile = strings.TrimSpace(mobile)
	if email == "" && mobile == "" {
		return nil, ErrProfileNotFound
	}

	p, err := resolveProfileByIdentifier(ctx, u.profiles, email, mobile)
	if err != nil {
		return nil, err
	}

	key := "portfolio:" + p.Email + ":hobbies"
	if u.cache != nil {
		var cached []repository.Hobby
		if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	items, err := u.hobbies.FindByProfileID(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *HobbyService) AddHobby(ctx context.Context, authedEmail string, in HobbyInput) (repository.Hobby, error) {
	if strings.TrimSpace(in.HobbyName) == "" {
		return repository.Hobby{}, ErrInvalidInput
	}

	owner, err := u.profiles.FindByEmail(ctx, normalizeIdentifier(authedEmail))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Hobby{}, ErrProfileRequired
		}
		return repository.Hobby{}, ErrInternal
	}

	created, err := u.hobbies.Create(ctx, repository.Hobby{
		ID:         uuid.New(),
		ProfileID:  owner.ID,
		OwnerEmail: owner.Email,
		HobbyName:  in.HobbyName,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Hobby{}, ErrProfileRequired
		}
		return repository.Hobby{}, ErrInternal
	}

	u.evict(ctx, owner.Email)
	return created, nil
}

func (u *HobbyService) UpdateHobby(ctx context.Context, authedEmail string, id uuid.UUID, in HobbyInput) (repository.Hobby, error) {
	if strings.TrimSpace(in.HobbyName) == "" {
		return repository.Hobby{}, ErrInvalidInput
	}

	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return repository.Hobby{}, err
	}

	item.HobbyName = in.HobbyName

	updated, err := u.hobbies.Update(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrHobbyNotFound) {
			return repository.Hobby{}, ErrHobbyNotFound
		}
		return repository.Hobby{}, ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return updated, nil
}

func (u *HobbyService) DeleteHobby(ctx context.Context, authedEmail string, id uuid.UUID) error {
	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return err
	}

	if err := u.hobbies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHobbyNotFound) {
			return ErrHobbyNotFound
		}
		return ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return nil
}

func (u *HobbyService) loadOwned(ctx context.Context, authedEmail string, id uuid.UUID) (repository.Hobby, error) {
	item, err := u.hobbies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHobbyNotFound) {
			return repository.Hobby{}, ErrHobbyNotFound
		}
		return repository.Hobby{}, ErrInternal
	}
	if item.OwnerEmail != normalizeIdentifier(authedEmail) {
		return repository.Hobby{}, ErrForbidden
	}
	return item, nil
}

func (u *HobbyService) evict(ctx context.Context, email string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, "portfolio:"+email+":hobbies")
}
