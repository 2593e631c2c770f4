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

var ErrHobbyNotFound = errors.New("hobby not found")

type Hobby struct {
	ID         uuid.UUID
	ProfileID  uuid.UUID
	OwnerEmail string
	HobbyName  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type HobbyRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Hobby, error)
	FindByID(ctx context.Context, id uuid.UUID) (Hobby, error)
	Create(ctx context.Context, h Hobby) (Hobby, error)
	Update(ctx context.Context, h Hobby) (Hobby, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresHobbyRepository struct {
	db database.DB
}

func NewPostgresHobbyRepository(db database.DB) *PostgresHobbyRepository {
	return &PostgresHobbyRepository{db: db}
}

func (r *PostgresHobbyRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Hobby, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, hobby_name, created_at, updated_at
		 FROM hobbies WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Hobby, 0)
	for rows.Next() {
		var h Hobby
		if err := rows.Scan(&h.ID, &h.ProfileID, &h.HobbyName, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *PostgresHobbyRepository) FindByID(ctx context.Context, id uuid.UUID) (Hobby, error) {
	row := r.db.QueryRow(ctx,
		`SELECT h.id, h.profile_id, b.email, h.hobby_name, h.created_at, h.updated_at
		 FROM hobbies h
		 JOIN profiles b ON b.id = h.profile_id
		 WHERE h.id = $1`,
		id,
	)

	var h Hobby
	if err := row.Scan(&h.ID, &h.ProfileID, &h.OwnerEmail, &h.HobbyName, &h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Hobby{}, ErrHobbyNotFound
		}
		return Hobby{}, err
	}
	return h, nil
}

func (r *PostgresHobbyRepository) Create(ctx context.Context, h Hobby) (Hobby, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO hobbies (id, profile_id, hobby_name)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at`,
		h.ID, h.ProfileID, h.HobbyName,
	)
	if err := row.Scan(&h.CreatedAt, &h.UpdatedAt); err != nil {
		return Hobby{}, err
	}
	return h, nil
}

func (r *PostgresHobbyRepository) Update(ctx context.Context, h Hobby) (Hobby, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE hobbies SET hobby_name = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		h.ID, h.HobbyName,
	)
	if err := row.Scan(&h.CreatedAt, &h.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Hobby{}, ErrHobbyNotFound
		}
		return Hobby{}, err
	}
	return h, nil
}

func (r *PostgresHobbyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM hobbies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrHobbyNotFound
	}
	return nil
}
