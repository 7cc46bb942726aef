package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

type ProjectService struct {
	gateway *gateway.Client
}

func NewProjectService(gw *gateway.Client) *ProjectService {
	return &ProjectService{gateway: gw}
}

func (s *ProjectService) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	var created models.Project
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/project/create-project",
		Body:   project,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &created, nil
}

func (s *ProjectService) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/project",
	}, &projects)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, projectID string) (*models.Project, error) {
	var project models.Project
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/project/" + projectID,
	}, &project)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject sends a partial update; only the fields present in updates
// change on the server.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, updates map[string]interface{}) (*models.Project, error) {
	var updated models.Project
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/project/" + projectID,
		Body:   updates,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/project/" + projectID,
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
