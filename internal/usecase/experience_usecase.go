package usecase

import (
	"context"
	"errors"
	"strings"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

var ErrExperienceNotFound = errors.New("experience not found")

type ExperienceInput struct {
	CompanyName string
	Role        string
	StartDate   string
	EndDate     string
	Description string
}

type ExperienceUsecase interface {
	ListExperiences(ctx context.Context, email, mobile string) ([]repository.Experience, error)
	AddExperience(ctx context.Context, authedEmail string, in ExperienceInput) (repository.Experience, error)
	UpdateExperience(ctx context.Context, authedEmail string, id uuid.UUID, in ExperienceInput) (repository.Experience, error)
	DeleteExperience(ctx context.Context, authedEmail string, id uuid.UUID) error
}

type ExperienceService struct {
	experiences repository.ExperienceRepository
	profiles    repository.ProfileRepository
	cache       Cache
}

func NewExperienceUsecase(experiences repository.ExperienceRepository, profiles repository.ProfileRepository, c Cache) *ExperienceService {
	return &ExperienceService{experiences: experiences, profiles: profiles, cache: c}
}

func (u *ExperienceService) ListExperiences(ctx context.Context, email, mobile string) ([]repository.Experience, error) {
	email = normalizeIdentifier(email)
	mobile = strings.TrimSpace(mobile)
	if email == "" && mobile == "" {
		return nil, ErrProfileNotFound
	}

	p, err := resolveProfileByIdentifier(ctx, u.profiles, email, mobile)
	if err != nil {
		return nil, err
	}

	key := "portfolio:" + p.Email + ":experiences"
	if u.cache != nil {
		var cached []repository.Experience
		if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	items, err := u.experiences.FindByProfileID(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *ExperienceService) AddExperience(ctx context.Context, authedEmail string, in ExperienceInput) (repository.Experience, error) {
	if err := validateExperienceInput(in); err != nil {
		return repository.Experience{}, err
	}

	owner, err := u.profiles.FindByEmail(ctx, normalizeIdentifier(authedEmail))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Experience{}, ErrProfileRequired
		}
		return repository.Experience{}, ErrInternal
	}

	created, err := u.experiences.Create(ctx, repository.Experience{
		ID:          uuid.New(),
		ProfileID:   owner.ID,
		OwnerEmail:  owner.Email,
		CompanyName: in.CompanyName,
		Role:        in.Role,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Experience{}, ErrProfileRequired
		}
		return repository.Experience{}, ErrInternal
	}

	u.evict(ctx, owner.Email)
	return created, nil
}

func (u *ExperienceService) UpdateExperience(ctx context.Context, authedEmail string, id uuid.UUID, in ExperienceInput) (repository.Experience, error) {
	if err := validateExperienceInput(in); err != nil {
		return repository.Experience{}, err
	}

	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return repository.Experience{}, err
	}

	item.CompanyName = in.CompanyName
	item.Role = in.Role
	item.StartDate = in.StartDate
	item.EndDate = in.EndDate
	item.Description = in.Description

	updated, err := u.experiences.Update(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return repository.Experience{}, ErrExperienceNotFound
		}
		return repository.Experience{}, ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return updated, nil
}

func (u *ExperienceService) DeleteExperience(ctx context.Context, authedEmail string, id uuid.UUID) error {
	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return err
	}

	if err := u.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return ErrExperienceNotFound
		}
		return ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return nil
}

func (u *ExperienceService) loadOwned(ctx context.Context, authedEmail string, id uuid.UUID) (repository.Experience, error) {
	item, err := u.experiences.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExperienceNotFound) {
			return repository.Experience{}, ErrExperienceNotFound
		}
		return repository.Experience{}, ErrInternal
	}
	if item.OwnerEmail != normalizeIdentifier(authedEmail) {
		return repository.Experience{}, ErrForbidden
	}
	return item, nil
}

func validateExperienceInput(in ExperienceInput) error {
	if strings.TrimSpace(in.CompanyName) == "" ||
		strings.TrimSpace(in.Role) == "" ||
		strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (u *ExperienceService) evict(ctx context.Context, email string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, "portfolio:"+email+":experiences")
}
