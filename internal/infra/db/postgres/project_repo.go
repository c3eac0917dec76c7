package postgres

import (
	"context"
	"database/sql"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/projects"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Save(ctx context.Context, p *domain.Project) error {
	const q = `
INSERT INTO projects (id, name, client_name, description, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, q, p.ID, p.Name, p.ClientName, nullable(p.Description), nullable(p.CreatedBy), p.CreatedAt)
	return err
}

func (r *ProjectRepository) Get(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	const q = `
SELECT id, name, client_name, description, created_by, created_at
FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return p, err
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	const q = `
SELECT id, name, client_name, description, created_by, created_at
FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	const q = `
UPDATE projects SET name = $1, client_name = $2, description = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, q, p.Name, p.ClientName, nullable(p.Description), p.ID)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var description, createdBy sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.ClientName, &description, &createdBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Description = description.String
	p.CreatedBy = createdBy.String
	return &p, nil
}
