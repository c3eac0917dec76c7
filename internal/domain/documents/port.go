package documents

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("document not found")

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, d *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	ListByProject(ctx context.Context, projectID string) ([]*Document, error)
	Delete(ctx context.Context, id string) error
}

// ObjectStore port (interface untuk penyimpanan file)
type ObjectStore interface {
	Upload(ctx context.Context, localPath, key, contentType string) (string, error)
	Remove(ctx context.Context, key string) error
}

// TextExtractor turns a stored file into plain text.
// Unsupported formats yield an empty string, not an error.
type TextExtractor interface {
	Extract(path, contentType string) (string, error)
}
