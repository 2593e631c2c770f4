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

var ErrSkillNotFound = errors.New("skill not found")

type Skill struct {
	ID                  uuid.UUID
	ProfileID           uuid.UUID
	OwnerEmail          string
	Application         string
	ProgrammingLanguage string
	Technologies        string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type SkillRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (Skill, error)
	Create(ctx context.Context, s Skill) (Skill, error)
	Update(ctx context.Context, s Skill) (Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, application, programming_language, technologies, created_at, updated_at
		 FROM skills WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.ProfileID, &s.Application, &s.ProgrammingLanguage,
			&s.Technologies, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id uuid.UUID) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`SELECT s.id, s.profile_id, b.email, s.application, s.programming_language, s.technologies,
		        s.created_at, s.updated_at
		 FROM skills s
		 JOIN profiles b ON b.id = s.profile_id
		 WHERE s.id = $1`,
		id,
	)

	var s Skill
	if err := row.Scan(&s.ID, &s.ProfileID, &s.OwnerEmail, &s.Application,
		&s.ProgrammingLanguage, &s.Technologies, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s Skill) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, profile_id, application, programming_language, technologies)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		s.ID, s.ProfileID, s.Application, s.ProgrammingLanguage, s.Technologies,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s Skill) (Skill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE skills
		 SET application = $2, programming_language = $3, technologies = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		s.ID, s.Application, s.ProgrammingLanguage, s.Technologies,
	)
	if err := row.Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Skill{}, ErrSkillNotFound
		}
		return Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSkillNotFound
	}
	return nil
}
