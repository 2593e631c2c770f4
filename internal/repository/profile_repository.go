package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"profile-folio/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type Profile struct {
	ID             uuid.UUID
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
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProfileRepository interface {
	Create(ctx context.Context, p Profile) (Profile, error)
	Update(ctx context.Context, p Profile) (Profile, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindByEmail(ctx context.Context, email string) (Profile, error)
	FindByMobile(ctx context.Context, mobile string) (Profile, error)
	FindFirst(ctx context.Context) (Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, name, email, mobile_number,
	COALESCE(linkedin, ''), COALESCE(github, ''), COALESCE(current_college, ''),
	COALESCE(profile_image, ''), COALESCE(headline, ''), COALESCE(about_text, ''),
	COALESCE(description, ''), created_at, updated_at`

func (r *PostgresProfileRepository) Create(ctx context.Context, p Profile) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, name, email, mobile_number, linkedin, github, current_college, profile_image, headline, about_text, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+profileColumns,
		p.ID, p.Name, p.Email, p.MobileNumber, p.Linkedin, p.Github, p.CurrentCollege,
		p.ProfileImage, p.Headline, p.AboutText, p.Description,
	)
	return scanProfile(row)
}

// Update replaces every mutable field of the row identified by p.ID.
func (r *PostgresProfileRepository) Update(ctx context.Context, p Profile) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE profiles
		 SET name = $2, email = $3, mobile_number = $4, linkedin = $5, github = $6,
		     current_college = $7, profile_image = $8, headline = $9, about_text = $10,
		     description = $11, updated_at = now()
		 WHERE id = $1
		 RETURNING `+profileColumns,
		p.ID, p.Name, p.Email, p.MobileNumber, p.Linkedin, p.Github, p.CurrentCollege,
		p.ProfileImage, p.Headline, p.AboutText, p.Description,
	)
	return scanProfile(row)
}

// Delete removes the profile; child rows go with it via ON DELETE CASCADE.
func (r *PostgresProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *PostgresProfileRepository) FindByEmail(ctx context.Context, email string) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) FindByMobile(ctx context.Context, mobile string) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE mobile_number = $1`, mobile)
	return scanProfile(row)
}

// FindFirst returns the oldest stored profile. It backs the implicit
// default used by unauthenticated reads that give no identifier.
func (r *PostgresProfileRepository) FindFirst(ctx context.Context) (Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY created_at ASC LIMIT 1`)
	return scanProfile(row)
}

func scanProfile(row database.Row) (Profile, error) {
	var p Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.MobileNumber,
		&p.Linkedin, &p.Github, &p.CurrentCollege,
		&p.ProfileImage, &p.Headline, &p.AboutText,
		&p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrProfileNotFound
		}
		return Profile{}, err
	}
	return p, nil
}
