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

var ErrProjectNotFound = errors.New("project not found")

type Project struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	OwnerEmail  string
	Name        string
	OneLiner    string
	TechStack   string
	Description string
	Source      string
	Link        string
	Images      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectRepository interface {
	FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (Project, error)
	Create(ctx context.Context, p Project) (Project, error)
	Update(ctx context.Context, p Project) (Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresProjectRepository struct {
	db database.DB
}

func NewPostgresProjectRepository(db database.DB) *PostgresProjectRepository {
	return &PostgresProjectRepository{db: db}
}

func (r *PostgresProjectRepository) FindByProfileID(ctx context.Context, profileID uuid.UUID) ([]Project, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, profile_id, name, one_liner, tech_stack, description,
		        COALESCE(source, ''), COALESCE(link, ''), COALESCE(images, ''),
		        created_at, updated_at
		 FROM projects WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.ProfileID, &p.Name, &p.OneLiner, &p.TechStack,
			&p.Description, &p.Source, &p.Link, &p.Images, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// FindByID joins the owning profile so callers can run the ownership
// check without a second query.
func (r *PostgresProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (Project, error) {
	row := r.db.QueryRow(ctx,
		`SELECT p.id, p.profile_id, b.email, p.name, p.one_liner, p.tech_stack, p.description,
		        COALESCE(p.source, ''), COALESCE(p.link, ''), COALESCE(p.images, ''),
		        p.created_at, p.updated_at
		 FROM projects p
		 JOIN profiles b ON b.id = p.profile_id
		 WHERE p.id = $1`,
		id,
	)

	var p Project
	if err := row.Scan(&p.ID, &p.ProfileID, &p.OwnerEmail, &p.Name, &p.OneLiner, &p.TechStack,
		&p.Description, &p.Source, &p.Link, &p.Images, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Create(ctx context.Context, p Project) (Project, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO projects (id, profile_id, name, one_liner, tech_stack, description, source, link, images)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		p.ID, p.ProfileID, p.Name, p.OneLiner, p.TechStack, p.Description, p.Source, p.Link, p.Images,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Update(ctx context.Context, p Project) (Project, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE projects
		 SET name = $2, one_liner = $3, tech_stack = $4, description = $5,
		     source = $6, link = $7, images = $8, updated_at = now()
		 WHERE id = $1
		 RETURNING created_at, updated_at`,
		p.ID, p.Name, p.OneLiner, p.TechStack, p.Description, p.Source, p.Link, p.Images,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Project{}, ErrProjectNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *PostgresProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrProjectNotFound
	}
	return nil
}
