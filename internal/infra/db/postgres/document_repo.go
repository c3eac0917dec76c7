package postgres

import (
	"context"
	"database/sql"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/documents"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Save(ctx context.Context, d *domain.Document) error {
	const q = `
INSERT INTO documents (id, project_id, original_name, storage_name, size, status, uploaded_at, context)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, q,
		d.ID, d.ProjectID, d.OriginalName, d.StorageName, d.Size, d.Status, d.UploadedAt, nullable(d.Context))
	return err
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*domain.Document, error) {
	const q = `
SELECT id, project_id, original_name, storage_name, size, status, uploaded_at, context
FROM documents WHERE id = $1`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return d, err
}

func (r *DocumentRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error) {
	const q = `
SELECT id, project_id, original_name, storage_name, size, status, uploaded_at, context
FROM documents WHERE project_id = $1 ORDER BY uploaded_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return err
}

func scanDocument(row rowScanner) (*domain.Document, error) {
	var d domain.Document
	var contextText sql.NullString
	if err := row.Scan(&d.ID, &d.ProjectID, &d.OriginalName, &d.StorageName, &d.Size, &d.Status, &d.UploadedAt, &contextText); err != nil {
		return nil, err
	}
	d.Context = contextText.String
	return &d, nil
}
