package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Upsert(ctx context.Context, rep *domain.Report) error {
	payload, err := json.Marshal(rep.Report)
	if err != nil {
		return fmt.Errorf("marshal report payload: %w", err)
	}
	const q = `
INSERT INTO analysis_reports (project_id, report, submission_version, generated_at, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (project_id) DO UPDATE SET
  report = EXCLUDED.report,
  submission_version = EXCLUDED.submission_version,
  generated_at = EXCLUDED.generated_at,
  updated_at = EXCLUDED.updated_at`
	_, err = r.db.ExecContext(ctx, q, rep.ProjectID, payload, rep.SubmissionVersion, rep.GeneratedAt, rep.UpdatedAt)
	return err
}

func (r *ReportRepository) Get(ctx context.Context, projectID string) (*domain.Report, error) {
	const q = `
SELECT project_id, report, submission_version, generated_at, updated_at
FROM analysis_reports WHERE project_id = $1`
	var rep domain.Report
	var payload []byte
	err := r.db.QueryRowContext(ctx, q, projectID).Scan(
		&rep.ProjectID, &payload, &rep.SubmissionVersion, &rep.GeneratedAt, &rep.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &rep.Report); err != nil {
		return nil, fmt.Errorf("unmarshal report payload: %w", err)
	}
	return &rep, nil
}

func (r *ReportRepository) Delete(ctx context.Context, projectID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM analysis_reports WHERE project_id = $1`, projectID)
	return err
}
