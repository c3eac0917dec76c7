package assessment

import "context"

// SubmissionRepository port. Upsert replaces the item list wholesale and
// bumps the version counter; repositories return (nil, nil) on a miss.
type SubmissionRepository interface {
	Upsert(ctx context.Context, s *Submission) error
	Get(ctx context.Context, projectID string) (*Submission, error)
}

// ReportRepository port. One report per project, enforced by a unique key
// plus upsert-on-write. Delete on a missing report is not an error.
type ReportRepository interface {
	Upsert(ctx context.Context, r *Report) error
	Get(ctx context.Context, projectID string) (*Report, error)
	Delete(ctx context.Context, projectID string) error
}

// ReportRenderer converts a persisted report into a downloadable document.
type ReportRenderer interface {
	Render(r *Report) ([]byte, error)
}
