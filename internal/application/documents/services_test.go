package documents

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/documents"
)

type fakeRepo struct {
	docs    map[string]*domain.Document
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string]*domain.Document{}}
}

func (f *fakeRepo) Save(_ context.Context, d *domain.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *d
	f.docs[d.ID] = &cp
	return nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*domain.Document, error) {
	return f.docs[id], nil
}

func (f *fakeRepo) ListByProject(_ context.Context, projectID string) ([]*domain.Document, error) {
	var out []*domain.Document
	for _, d := range f.docs {
		if d.ProjectID == projectID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.docs, id)
	return nil
}

type fakeStore struct {
	uploads   []string
	removed   []string
	uploadErr error
}

func (f *fakeStore) Upload(_ context.Context, _, key, _ string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, key)
	return "http://store/documents/" + key, nil
}

func (f *fakeStore) Remove(_ context.Context, key string) error {
	f.removed = append(f.removed, key)
	return nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(string, string) (string, error) { return f.text, f.err }

type fakeAI struct {
	reply string
	err   error
	calls int
}

func (f *fakeAI) Invoke(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.reply, f.err
}

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func spoolTemp(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spooled")
	require.NoError(t, os.WriteFile(path, []byte("file body"), 0o600))
	return path
}

func TestUploadPipeline(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	llm := &fakeAI{reply: "A logistics company planning AI adoption."}
	clock := &fixedClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}

	svc := &Service{
		Repo:      repo,
		Store:     store,
		Extractor: &fakeExtractor{text: "extracted body text"},
		AI:        llm,
		Clock:     clock,
	}

	path := spoolTemp(t)
	saved, err := svc.Upload(context.Background(), "PRJ-DOC00001", []UploadFile{
		{Name: "fleet report.pdf", Path: path, Size: 9, ContentType: "application/pdf"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)

	doc := saved[0]
	assert.Equal(t, "fleet report.pdf", doc.OriginalName)
	assert.Equal(t, domain.StatusUploaded, doc.Status)
	assert.Equal(t, "A logistics company planning AI adoption.", doc.Context)
	// storage key prefixes the upload time and replaces whitespace
	expectedKey := fmt.Sprintf("%d_fleet_report.pdf", clock.now.UnixMilli())
	assert.Equal(t, expectedKey, doc.StorageName)
	assert.Equal(t, []string{expectedKey}, store.uploads)

	// record persisted and spooled temp file cleaned up
	assert.Len(t, repo.docs, 1)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestUploadDegradesWhenExtractionFails(t *testing.T) {
	llm := &fakeAI{reply: "unused"}
	svc := &Service{
		Repo:      newFakeRepo(),
		Store:     &fakeStore{},
		Extractor: &fakeExtractor{err: fmt.Errorf("corrupt file")},
		AI:        llm,
		Clock:     &fixedClock{now: time.Now()},
	}

	saved, err := svc.Upload(context.Background(), "PRJ-DOC00002", []UploadFile{
		{Name: "broken.pdf", Path: spoolTemp(t), ContentType: "application/pdf"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].Context)
	assert.Zero(t, llm.calls, "no text means no summarization call")
}

func TestUploadDegradesWhenSummarizationFails(t *testing.T) {
	svc := &Service{
		Repo:      newFakeRepo(),
		Store:     &fakeStore{},
		Extractor: &fakeExtractor{text: "some text"},
		AI:        &fakeAI{err: fmt.Errorf("model unavailable")},
		Clock:     &fixedClock{now: time.Now()},
	}

	saved, err := svc.Upload(context.Background(), "PRJ-DOC00003", []UploadFile{
		{Name: "doc.pdf", Path: spoolTemp(t), ContentType: "application/pdf"},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Empty(t, saved[0].Context)
}

func TestUploadAbortsOnStorageFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := &Service{
		Repo:      repo,
		Store:     &fakeStore{uploadErr: fmt.Errorf("bucket unreachable")},
		Extractor: &fakeExtractor{},
		AI:        &fakeAI{},
		Clock:     &fixedClock{now: time.Now()},
	}

	saved, err := svc.Upload(context.Background(), "PRJ-DOC00004", []UploadFile{
		{Name: "doc.pdf", Path: spoolTemp(t), ContentType: "application/pdf"},
	})
	require.Error(t, err)
	assert.Empty(t, saved)
	assert.Empty(t, repo.docs)
}

func TestDeleteRemovesObjectThenRecord(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStore{}
	repo.docs["doc-1"] = &domain.Document{ID: "doc-1", StorageName: "123_report.pdf"}

	svc := &Service{Repo: repo, Store: store, Extractor: &fakeExtractor{}, AI: &fakeAI{}, Clock: &fixedClock{now: time.Now()}}
	require.NoError(t, svc.Delete(context.Background(), "doc-1"))
	assert.Equal(t, []string{"123_report.pdf"}, store.removed)
	assert.Empty(t, repo.docs)
}

func TestDeleteMissingDocument(t *testing.T) {
	svc := &Service{Repo: newFakeRepo(), Store: &fakeStore{}, Extractor: &fakeExtractor{}, AI: &fakeAI{}, Clock: &fixedClock{now: time.Now()}}
	err := svc.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
