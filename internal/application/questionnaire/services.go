package questionnaire

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/bryanwahyu/ai-readiness/internal/application"
	"github.com/bryanwahyu/ai-readiness/internal/domain/ai"
	domain "github.com/bryanwahyu/ai-readiness/internal/domain/assessment"
	"github.com/bryanwahyu/ai-readiness/internal/domain/documents"
	"github.com/bryanwahyu/ai-readiness/internal/infra/ai/prompt"
)

// Service implements questionnaire use-cases: adaptive question
// generation, submission fetch and submission replace.
type Service struct {
	Submissions domain.SubmissionRepository
	Reports     domain.ReportRepository
	Documents   documents.Repository
	AI          ai.Client
	Parser      ai.OutputParser
	Clock       application.Clock
}

// Generate builds the questionnaire from the project's document context.
func (s *Service) Generate(ctx context.Context, projectID string) ([]domain.Question, error) {
	docs, err := s.Documents.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	summaries := make([]string, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, d.Context)
	}

	reply, err := s.AI.Invoke(ctx, prompt.Questionnaire(prompt.JoinContext(summaries)))
	if err != nil {
		return nil, err
	}
	payload, err := s.Parser.Extract(reply)
	if err != nil {
		return nil, err
	}
	var questions []domain.Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, &ai.MalformedOutputError{Raw: reply, Err: err}
	}
	return questions, nil
}

// GetSubmission returns the project's submission, or nil when none exists.
func (s *Service) GetSubmission(ctx context.Context, projectID string) (*domain.Submission, error) {
	return s.Submissions.Get(ctx, projectID)
}

// Submit replaces the submission wholesale and deletes any existing report
// so the next report fetch forces regeneration. The two writes are issued
// concurrently; the version counter on the submission covers the window
// where a racing analysis could still persist a stale report.
func (s *Service) Submit(ctx context.Context, projectID string, items []domain.SubmissionItem) error {
	if projectID == "" || items == nil {
		return domain.ErrInvalidPayload
	}
	for _, item := range items {
		if item.QuestionID == "" {
			return domain.ErrInvalidPayload
		}
	}

	sub := &domain.Submission{
		ProjectID:   projectID,
		Items:       items,
		SubmittedAt: s.Clock.Now(),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.Reports.Delete(gctx, projectID) })
	g.Go(func() error { return s.Submissions.Upsert(gctx, sub) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("submit questionnaire: %w", err)
	}
	return nil
}
