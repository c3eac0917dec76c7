package projects

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("project not found")

// Repository port (interface untuk persistence)
type Repository interface {
	Save(ctx context.Context, p *Project) error
	Get(ctx context.Context, id ProjectID) (*Project, error)
	List(ctx context.Context) ([]*Project, error)
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id ProjectID) error
}
