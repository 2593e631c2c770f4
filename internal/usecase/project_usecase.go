package usecase

import (
	"context"
	"errors"
	"strings"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectInput struct {
	Name        string
	OneLiner    string
	TechStack   string
	Description string
	Source      string
	Link        string
	Images      string
}

type ProjectUsecase interface {
	ListProjects(ctx context.Context, email, mobile string) ([]repository.Project, error)
	AddProject(ctx context.Context, authedEmail string, in ProjectInput) (repository.Project, error)
	UpdateProject(ctx context.Context, authedEmail string, id uuid.UUID, in ProjectInput) (repository.Project, error)
	DeleteProject(ctx context.Context, authedEmail string, id uuid.UUID) error
}

type ProjectService struct {
	projects repository.ProjectRepository
	profiles repository.ProfileRepository
	cache    Cache
}

func NewProjectUsecase(projects repository.ProjectRepository, profiles repository.ProfileRepository, c Cache) *ProjectService {
	return &ProjectService{projects: projects, profiles: profiles, cache: c}
}

func (u *ProjectService) ListProjects(ctx context.Context, email, mobile string) ([]repository.Project, error) {
	email = normalizeIdentifier(email)
	mobile = strings.TrimSpace(mobile)
	if email == "" && mobile == "" {
		return nil, ErrProfileNotFound
	}

	p, err := resolveProfileByIdentifier(ctx, u.profiles, email, mobile)
	if err != nil {
		return nil, err
	}

	key := "portfolio:" + p.Email + ":projects"
	if u.cache != nil {
		var cached []repository.Project
		if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	items, err := u.projects.FindByProfileID(ctx, p.ID)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, items)
	}
	return items, nil
}

func (u *ProjectService) AddProject(ctx context.Context, authedEmail string, in ProjectInput) (repository.Project, error) {
	if err := validateProjectInput(in); err != nil {
		return repository.Project{}, err
	}

	owner, err := u.profiles.FindByEmail(ctx, normalizeIdentifier(authedEmail))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Project{}, ErrProfileRequired
		}
		return repository.Project{}, ErrInternal
	}

	created, err := u.projects.Create(ctx, repository.Project{
		ID:          uuid.New(),
		ProfileID:   owner.ID,
		OwnerEmail:  owner.Email,
		Name:        in.Name,
		OneLiner:    in.OneLiner,
		TechStack:   in.TechStack,
		Description: in.Description,
		Source:      in.Source,
		Link:        in.Link,
		Images:      in.Images,
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.Project{}, ErrProfileRequired
		}
		return repository.Project{}, ErrInternal
	}

	u.evict(ctx, owner.Email)
	return created, nil
}

func (u *ProjectService) UpdateProject(ctx context.Context, authedEmail string, id uuid.UUID, in ProjectInput) (repository.Project, error) {
	if err := validateProjectInput(in); err != nil {
		return repository.Project{}, err
	}

	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return repository.Project{}, err
	}

	item.Name = in.Name
	item.OneLiner = in.OneLiner
	item.TechStack = in.TechStack
	item.Description = in.Description
	item.Source = in.Source
	item.Link = in.Link
	item.Images = in.Images

	updated, err := u.projects.Update(ctx, item)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return repository.Project{}, ErrProjectNotFound
		}
		return repository.Project{}, ErrInternal
	}
	u.evict(ctx, item.OwnerEmail)
	return updated, nil
}

func (u *ProjectService) DeleteProject(ctx context.Context, authedEmail string, id uuid.UUID) error {
	item, err := u.loadOwned(ctx, authedEmail, id)
	if err != nil {
		return err
	}

	if err := u.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return ErrProjectNotFound
		}
		return ErrInternal
	}

	u.evict(ctx, item.OwnerEmail)
	return nil
}

func (u *ProjectService) evict(ctx context.Context, email string) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, "portfolio:"+email+":projects")
}

// loadOwned fetches the row and enforces that the owning profile's email
// equals the caller's email.
func (u *ProjectService) loadOwned(ctx context.Context, authedEmail string, id uuid.UUID) (repository.Project, error) {
	item, err := u.projects.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return repository.Project{}, ErrProjectNotFound
		}
		return repository.Project{}, ErrInternal
	}
	if item.OwnerEmail != normalizeIdentifier(authedEmail) {
		return repository.Project{}, ErrForbidden
	}
	return item, nil
}

func validateProjectInput(in ProjectInput) error {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.OneLiner) == "" ||
		strings.TrimSpace(in.TechStack) == "" ||
		strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	return nil
}
