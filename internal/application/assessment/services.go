package assessment

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

// Service implements the analysis use-cases: run the four-category
// analysis, fetch the persisted report, render it for download.
type Service struct {
	Submissions domain.SubmissionRepository
	Reports     domain.ReportRepository
	Documents   documents.Repository
	AI          ai.Client
	Parser      ai.OutputParser
	Renderer    domain.ReportRenderer
	Clock       application.Clock

	// AllowPartial keeps categories that parsed when at least one did.
	// Default is all-or-nothing: a half-built report is worse than none.
	AllowPartial bool
}

// CategoryResult is the outcome of one category analysis.
type CategoryResult struct {
	Category domain.Category
	Payload  json.RawMessage
	Err      error
}

// RunAnalysis fetches the submission and document context, dispatches the
// four category prompts concurrently, parses each reply and persists the
// merged report idempotently. LLM transport failures abort the batch; so
// does any parse failure unless AllowPartial is set.
func (s *Service) RunAnalysis(ctx context.Context, projectID string) (*domain.Report, error) {
	var (
		sub  *domain.Submission
		docs []*documents.Document
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sub, err = s.Submissions.Get(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		docs, err = s.Documents.ListByProject(gctx, projectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load assessment inputs: %w", err)
	}
	if sub == nil || len(sub.Items) == 0 {
		return nil, domain.ErrNotFound
	}

	inputs := buildInputs(sub, docs)
	categories := domain.Categories()
	results := make([]CategoryResult, len(categories))

	ag, agctx := errgroup.WithContext(ctx)
	for i, c := range categories {
		i, c := i, c
		ag.Go(func() error {
			reply, err := s.AI.Invoke(agctx, prompt.Build(c, inputs))
			if err != nil {
				return fmt.Errorf("%s analysis: %w", c, err)
			}
			payload, perr := s.Parser.Extract(reply)
			results[i] = CategoryResult{Category: c, Payload: payload, Err: perr}
			if perr != nil && !s.AllowPartial {
				return perr
			}
			return nil
		})
	}
	if err := ag.Wait(); err != nil {
		return nil, err
	}

	payload, err := mergeResults(results, s.AllowPartial)
	if err != nil {
		return nil, err
	}

	now := s.Clock.Now()
	rep := &domain.Report{
		ProjectID:         projectID,
		Report:            payload,
		SubmissionVersion: sub.Version,
		GeneratedAt:       now,
		UpdatedAt:         now,
	}
	// generatedAt stays fixed at first-write time across regenerations
	prev, err := s.Reports.Get(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("load previous report: %w", err)
	}
	if prev != nil {
		rep.GeneratedAt = prev.GeneratedAt
	}

	if err := s.Reports.Upsert(ctx, rep); err != nil {
		return nil, fmt.Errorf("persist report: %w", err)
	}
	return rep, nil
}

// GetReport returns the persisted report. A report generated from an older
// submission version is treated as absent so stale answers are never
// served; callers react to ErrNotFound by triggering RunAnalysis.
func (s *Service) GetReport(ctx context.Context, projectID string) (*domain.Report, error) {
	rep, err := s.Reports.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	sub, err := s.Submissions.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if sub == nil || sub.Version != rep.SubmissionVersion {
		return nil, domain.ErrNotFound
	}
	return rep, nil
}

// DownloadReport renders the persisted report as document bytes.
func (s *Service) DownloadReport(ctx context.Context, projectID string) ([]byte, error) {
	rep, err := s.GetReport(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.Renderer.Render(rep)
}

func buildInputs(sub *domain.Submission, docs []*documents.Document) prompt.Inputs {
	summaries := make([]string, 0, len(docs))
	for _, d := range docs {
		summaries = append(summaries, d.Context)
	}
	answers := make(map[string][]string)
	for _, c := range domain.Categories() {
		for _, id := range prompt.QuestionIDs(c) {
			answers[id] = sub.AnswersFor(id)
		}
	}
	return prompt.Inputs{
		DocumentContext: prompt.JoinContext(summaries),
		Answers:         answers,
	}
}

// mergeResults folds category results into one payload. Default mode
// requires all four to have parsed; partial mode keeps what parsed and
// fails only when nothing did.
func mergeResults(results []CategoryResult, allowPartial bool) (domain.ReportPayload, error) {
	var payload domain.ReportPayload
	parsed := 0
	var firstErr error
	for _, res := range results {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		payload.Set(res.Category, res.Payload)
		parsed++
	}
	if firstErr != nil && !allowPartial {
		return domain.ReportPayload{}, firstErr
	}
	if parsed == 0 && firstErr != nil {
		return domain.ReportPayload{}, firstErr
	}
	return payload, nil
}
