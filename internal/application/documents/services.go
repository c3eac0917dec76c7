package documents

import (
	"context"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/bryanwahyu/ai-readiness/internal/application"
	"github.com/bryanwahyu/ai-readiness/internal/domain/ai"
	domain "github.com/bryanwahyu/ai-readiness/internal/domain/documents"
	"github.com/bryanwahyu/ai-readiness/internal/infra/ai/prompt"
)

// UploadFile describes one multipart file already spooled to disk.
type UploadFile struct {
	Name        string
	Path        string
	Size        int64
	ContentType string
}

// Service implements the upload→store→extract→summarize pipeline.
type Service struct {
	Repo      domain.Repository
	Store     domain.ObjectStore
	Extractor domain.TextExtractor
	AI        ai.Client
	Clock     application.Clock
}

var whitespace = regexp.MustCompile(`\s+`)

// Upload stores each file in the object store, extracts its text, asks the
// LLM for a context summary and persists the document record. Extraction
// and summarization failures degrade to an empty context; storage failures
// abort the batch. The spooled temp file is removed best-effort.
func (s *Service) Upload(ctx context.Context, projectID string, files []UploadFile) ([]*domain.Document, error) {
	saved := make([]*domain.Document, 0, len(files))
	for _, file := range files {
		now := s.Clock.Now()
		key := fmt.Sprintf("%d_%s", now.UnixMilli(), whitespace.ReplaceAllString(file.Name, "_"))

		if _, err := s.Store.Upload(ctx, file.Path, key, file.ContentType); err != nil {
			return saved, fmt.Errorf("upload %s: %w", file.Name, err)
		}

		text, err := s.Extractor.Extract(file.Path, file.ContentType)
		if err != nil {
			log.Printf("text extraction failed for %s: %v", file.Name, err)
			text = ""
		}

		var summary string
		if strings.TrimSpace(text) != "" {
			summary, err = s.AI.Invoke(ctx, prompt.Summarize(text))
			if err != nil {
				log.Printf("summarization failed for %s: %v", file.Name, err)
				summary = ""
			}
		}

		doc := &domain.Document{
			ID:           uuid.New().String(),
			ProjectID:    projectID,
			OriginalName: file.Name,
			StorageName:  key,
			Size:         file.Size,
			Status:       domain.StatusUploaded,
			UploadedAt:   now,
			Context:      summary,
		}
		if err := s.Repo.Save(ctx, doc); err != nil {
			return saved, fmt.Errorf("save document %s: %w", file.Name, err)
		}
		saved = append(saved, doc)

		if err := os.Remove(file.Path); err != nil {
			log.Printf("warning: failed to remove local file %s: %v", file.Path, err)
		}
	}
	return saved, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID string) ([]*domain.Document, error) {
	return s.Repo.ListByProject(ctx, projectID)
}

// Delete removes the stored object first, then the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if doc == nil {
		return domain.ErrNotFound
	}
	if err := s.Store.Remove(ctx, doc.StorageName); err != nil {
		return fmt.Errorf("remove stored object %s: %w", doc.StorageName, err)
	}
	return s.Repo.Delete(ctx, id)
}
