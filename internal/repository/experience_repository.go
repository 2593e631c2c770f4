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

var ErrExperienceNotFound = errors.New("experience not found")

type Experience struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	OwnerEmail  string
	CompanyName string
	Role        string
	StartDate   string
	EndDate     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ExperienceRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (Experience, error)
	Create(ctx context.Context, e Experience) (Experience, error)
	Update(ctx context.Context, e Experience) (Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresExperienceRepository struct {
	db database.DB
}

func NewPostgresExperienceRepository(db database.DB) *PostgresExperienceRepository {
	return &PostgresExperienceRepository{db: db}
}

func (r *PostgresExperienceRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, company_name, role, COALESCE(start_date, ''), COALESCE(end_date, ''),
		        description, created_at, updated_at
		 FROM experiences WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Experience, 0)
	for rows.Next() {
		var e Experience
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.CompanyName, &e.Role, &e.StartDate,
			&e.EndDate, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *PostgresExperienceRepository) FindByID(ctx context.Context, id uuid.UUID) (Experience, error) {
	row := r.db.QueryRow(ctx,
		`SELECT e.id, e.profile_id, b.email, e.company_name, e.role,
		        COALESCE(e.start_date, ''), COALESCE(e.end_date, ''), e.description,
		        e.created_at, e.updated_at
		 FROM experiences e
		 JOIN profiles b ON b.id = e.profile_id
		 WHERE e.id = $1`,
		id,
	)

	var e Experience
	if err := row.Scan(&e.ID, &e.ProfileID, &e.OwnerEmail, &e.CompanyName, &e.Role,
		&e.StartDate, &e.EndDate, &e.Description, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Experience{}, ErrExperienceNotFound
		}
		return Experience{}, err
	}
	return e, nil
}

func (r *PostgresExperienceRepository) Create(ctx context.Context, e Experience) (Experience, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO experiences (id, profile_id, company_name, role, start_date, end_date, description)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at`,
		e.ID, e.ProfileID, e.CompanyName, e.Role, e.StartDate, e.EndDate, e.Description,
	)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		return Experience{}, err
	}
	return e, nil
}

func (r *PostgresExperienceRepository) Update(ctx context.Context, e Experience) (Experience, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE experiences
		 SET company_name = $2, role = $3, start_date = $4, end_date = $5,
		     description = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		e.ID, e.CompanyName, e.Role, e.StartDate, e.EndDate, e.Description,
	)
	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Experience{}, ErrExperienceNotFound
		}
		return Experience{}, err
	}
	return e, nil
}

func (r *PostgresExperienceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExperienceNotFound
	}
	return nil
}
