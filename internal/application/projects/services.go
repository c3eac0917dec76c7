package projects

import (
	"context"
	"fmt"

	"github.com/bryanwahyu/ai-readiness/internal/application"
	domain "github.com/bryanwahyu/ai-readiness/internal/domain/projects"
)

// Service implements project use-cases.
type Service struct {
	Repo  domain.Repository
	Clock application.Clock
}

func (s *Service) Create(ctx context.Context, name, clientName, description, createdBy string) (*domain.Project, error) {
	if name == "" || clientName == "" {
		return nil, fmt.Errorf("name and client name are required")
	}
	p := &domain.Project{
		ID:          domain.NewID(),
		Name:        name,
		ClientName:  clientName,
		Description: description,
		CreatedBy:   createdBy,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Project, error) {
	return s.Repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id domain.ProjectID, name, clientName, description string) (*domain.Project, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != "" {
		p.Name = name
	}
	if clientName != "" {
		p.ClientName = clientName
	}
	p.Description = description
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id domain.ProjectID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, id)
}
