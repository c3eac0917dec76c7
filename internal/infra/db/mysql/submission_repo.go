package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
)

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Upsert replaces the submission wholesale. The version column starts at 1
// and is bumped on every replace so reports can detect staleness.
func (r *SubmissionRepository) Upsert(ctx context.Context, s *domain.Submission) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("marshal submission items: %w", err)
	}
	const q = `
INSERT INTO questionnaire_submissions (project_id, submission, version, submitted_at)
VALUES (?, ?, 1, ?)
ON DUPLICATE KEY UPDATE
  submission = VALUES(submission),
  version = version + 1,
  submitted_at = VALUES(submitted_at)`
	_, err = r.db.ExecContext(ctx, q, s.ProjectID, items, s.SubmittedAt)
	return err
}

func (r *SubmissionRepository) Get(ctx context.Context, projectID string) (*domain.Submission, error) {
	const q = `
SELECT project_id, submission, version, submitted_at
FROM questionnaire_submissions WHERE project_id = ?`
	var s domain.Submission
	var items []byte
	err := r.db.QueryRowContext(ctx, q, projectID).Scan(&s.ProjectID, &items, &s.Version, &s.SubmittedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal submission items: %w", err)
	}
	return &s, nil
}
