package usecase

import (
	"context"
	"errors"
	"strings"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

var ErrSkillNotFound = errors.New("skill not found")

type SkillInput struct {
	Application         string
	ProgrammingLanguage string
	Technologies        string
}

type SkillUsecase interface {
	ListSkills(ctx context.Context, email, mobile string) ([]repository.Skill, error)
	AddSkill(ctx context.Context, authedEmail string, in SkillInput) (repository.Skill, error)
	UpdateSkill(ctx context.Context, authedEmail string, id uuid.UUID, in SkillInput) (repository.Skill, error)
	DeleteSkill(ctx context.Context, authedEmail string, id uuid.UUID) error
}

type SkillService struct {
	skills   repository.SkillRepository
	profiles repository.ProfileRepository
	cache    Cache
}

func NewSkillUsecase(skills repository.SkillRepository, profiles repository.ProfileRepository, c Cache) *SkillService {
	return &SkillService{skills: skills, profiles: profiles, cache: c}
}

func (u *SkillService) ListSkills(ctx context.Context, email, mobile string) ([]repository.Skill, error) {
	email = normalizeIdentifier(email)
	mobile = strings.TrimSpace(mobile)
	if email == "" && mobile == "" {
		return nil, ErrProfileNotFound
	}

	p, err := resolveProfileByIdentifier(ctx, u.profiles, email, mobile)
	if err != nil {
		return nil, err
	}

	key := "portfolio:" + p.Email + ":skills"
	if u.cache != nil {
		var cached []repository.Skill
		if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	items, err := u.skills.FindByProfileID(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *SkillService) AddSkill(ctx context.Context, authedEmail string, in SkillInput) (repository.Skill, error) {
	if err := validateSkillInput(in); err != nil {
		return repository.Skill{}, err
	}

	owner, err := u.profiles.FindByEmail(ctx, normalizeIdentifier(authedEmail))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Skill{}, ErrProfileRequired
		}
		return repository.Skill{}, ErrInternal
	}

	created, err := u.skills.Create(ctx, repository.Skill{
		ID:                  uuid.New(),
		ProfileID:           owner.ID,
		OwnerEmail:          owner.Email,
		Application:         in.Application,
		ProgrammingLanguage: in.ProgrammingLanguage,
		Technologies:        in.Technologies,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Skill{}, ErrProfileRequired
		}
		return repository.Skill{}, ErrInternal
	}

	u.evict(ctx, owner.Email)
	return created, nil
}

func (u *SkillService) UpdateSkill(ctx context.Context, authedEmail string, id uuid.UUID, in SkillInput) (repository.Skill, error) {
	if err := validateSkillInput(in); err != nil {
		return repository.Skill{}, err
	}

	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return repository.Skill{}, err
	}

	item.Application = in.Application
	item.ProgrammingLanguage = in.ProgrammingLanguage
	item.Technologies = in.Technologies

	updated, err := u.skills.Update(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return repository.Skill{}, ErrSkillNotFound
		}
		return repository.Skill{}, ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return updated, nil
}

func (u *SkillService) DeleteSkill(ctx context.Context, authedEmail string, id uuid.UUID) error {
	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return err
	}

	if err := u.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return ErrSkillNotFound
		}
		return ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return nil
}

func (u *SkillService) loadOwned(ctx context.Context, authedEmail string, id uuid.UUID) (repository.Skill, error) {
	item, err := u.skills.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return repository.Skill{}, ErrSkillNotFound
		}
		return repository.Skill{}, ErrInternal
	}
	if item.OwnerEmail != normalizeIdentifier(authedEmail) {
		return repository.Skill{}, ErrForbidden
	}
	return item, nil
}

func validateSkillInput(in SkillInput) error {
	if strings.TrimSpace(in.Application) == "" ||
		strings.TrimSpace(in.ProgrammingLanguage) == "" ||
		strings.TrimSpace(in.Technologies) == "" {
		return ErrInvalidInput
	}
	return nil
}

func (u *SkillService) evict(ctx context.Context, email string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, "portfolio:"+email+":skills")
}
