package usecase

import (
	"context"
	"errors"
	"strings"

	"profile-folio/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateMobile = errors.New("mobile number already exists")
)

type ProfileInput struct {
	Name           string
	Email          string
	MobileNumber   *string
	Linkedin       string
	Github         string
	CurrentCollege string
	ProfileImage   string
	Headline       string
	AboutText      string
	Description    string
}

type ProfileUsecase interface {
	Upsert(ctx context.Context, authedEmail string, in ProfileInput) (repository.Profile, error)
	Resolve(ctx context.Context, email, mobile string) (repository.Profile, error)
	Delete(ctx context.Context, authedEmail string) error
}

type Profile struct {
	profiles repository.ProfileRepository
	cache    Cache
}

func NewProfileUsecase(profiles repository.ProfileRepository, c Cache) *Profile {
	return &Profile{profiles: profiles, cache: c}
}

// Upsert creates the caller's profile or fully replaces it when a profile
// with that email already exists. The submitted email must equal the
// authenticated credential's email.
func (u *Profile) Upsert(ctx context.Context, authedEmail string, in ProfileInput) (repository.Profile, error) {
	email := normalizeIdentifier(in.Email)
	if strings.TrimSpace(in.Name) == "" || email == "" {
		return repository.Profile{}, ErrInvalidInput
	}
	if email != normalizeIdentifier(authedEmail) {
		return repository.Profile{}, ErrForbidden
	}

	mobile := normalizeMobile(in.MobileNumber)

	existing, err := u.profiles.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return repository.Profile{}, ErrInternal
	}

	p := repository.Profile{
		Name:           strings.TrimSpace(in.Name),
		Email:          email,
		MobileNumber:   mobile,
		Linkedin:       in.Linkedin,
		Github:         in.Github,
		CurrentCollege: in.CurrentCollege,
		ProfileImage:   in.ProfileImage,
		Headline:       in.Headline,
		AboutText:      in.AboutText,
		Description:    in.Description,
	}

	var saved repository.Profile
	if err == nil {
		p.ID = existing.ID
		saved, err = u.profiles.Update(ctx, p)
	} else {
		if mobile != nil {
			if _, mErr := u.profiles.FindByMobile(ctx, *mobile); mErr == nil {
				return repository.Profile{}, ErrDuplicateMobile
			} else if !errors.Is(mErr, repository.ErrProfileNotFound) {
				return repository.Profile{}, ErrInternal
			}
		}
		p.ID = uuid.New()
		saved, err = u.profiles.Create(ctx, p)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return repository.Profile{}, ErrDuplicateMobile
		}
		return repository.Profile{}, ErrInternal
	}

	u.invalidate(ctx)
	return saved, nil
}

// Resolve looks the profile up by email first, then mobile. With no
// identifier it falls back to the first stored profile, which is the
// behavior single-tenant deployments rely on.
func (u *Profile) Resolve(ctx context.Context, email, mobile string) (repository.Profile, error) {
	email = normalizeIdentifier(email)
	mobile = strings.TrimSpace(mobile)

	var key string
	switch {
	case email != "":
		key = "profile:email:" + email
	case mobile != "":
		key = "profile:mobile:" + mobile
	default:
		key = "profile:first"
	}

	if u.cache != nil {
		var cached repository.Profile
		if hit, _ := u.cache.GetJSON(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	p, err := resolveProfileByIdentifier(ctx, u.profiles, email, mobile)
	if err != nil {
		return repository.Profile{}, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, p)
	}
	return p, nil
}

// Delete removes the caller's own profile; child rows cascade with it.
func (u *Profile) Delete(ctx context.Context, authedEmail string) error {
	email := normalizeIdentifier(authedEmail)

	p, err := u.profiles.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}

	if err := u.profiles.Delete(ctx, p.ID); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return ErrProfileNotFound
		}
		return ErrInternal
	}

	u.invalidate(ctx)
	if u.cache != nil {
		_ = u.cache.DeleteByPattern(ctx, "portfolio:"+email+":*")
	}
	return nil
}

// invalidate drops every cached profile view; the first-profile fallback
// key makes narrower invalidation more trouble than it is worth.
func (u *Profile) invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "profile:*")
}

// resolveProfileByIdentifier is shared with the child-entity usecases,
// which resolve the owning profile the same way reads do.
func resolveProfileByIdentifier(ctx context.Context, profiles repository.ProfileRepository, email, mobile string) (repository.Profile, error) {
	var (
		p   repository.Profile
		err error
	)
	switch {
	case email != "":
		p, err = profiles.FindByEmail(ctx, email)
	case mobile != "":
		p, err = profiles.FindByMobile(ctx, mobile)
	default:
		p, err = profiles.FindFirst(ctx)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return repository.Profile{}, ErrProfileNotFound
		}
		return repository.Profile{}, ErrInternal
	}
	return p, nil
}

func normalizeIdentifier(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeMobile(mobile *string) *string {
	if mobile == nil {
		return nil
	}
	m := strings.TrimSpace(*mobile)
	if m == "" {
		return nil
	}
	return &m
}
