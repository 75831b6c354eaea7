package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cryoflow/cryoflow/ent"
)

// ProjectService manages project records. Projects scope job numbering and
// anchor the on-disk directory layout.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a project rooted at path.
func (s *ProjectService) CreateProject(ctx context.Context, name, path string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}
	if path == "" {
		return nil, NewValidationError("path", "required")
	}

	project, err := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name).
		SetPath(path).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject retrieves a project by ID.
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	project, err := s.client.Project.Get(ctx, projectID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}
