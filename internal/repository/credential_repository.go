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

var ErrCredentialNotFound = errors.New("credential not found")

// Credential is the login identity. It is linked to a Profile only by the
// email string at request time, never by foreign key.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CredentialRepository interface {
	Create(ctx context.Context, c Credential) error
	FindByEmail(ctx context.Context, email string) (Credential, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type PostgresCredentialRepository struct {
	db database.DB
}

func NewPostgresCredentialRepository(db database.DB) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

func (r *PostgresCredentialRepository) Create(ctx context.Context, c Credential) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO credentials (id, email, password_hash) VALUES ($1, $2, $3)`,
		c.ID, c.Email, c.PasswordHash,
	)
	return err
}

func (r *PostgresCredentialRepository) FindByEmail(ctx context.Context, email string) (Credential, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM credentials WHERE email = $1`,
		email,
	)

	var c Credential
	if err := row.Scan(&c.ID, &c.Email, &c.PasswordHash, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Credential{}, ErrCredentialNotFound
		}
		return Credential{}, err
	}
	return c, nil
}

func (r *PostgresCredentialRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM credentials WHERE email = $1)`,
		email,
	)

	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
