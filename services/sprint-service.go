package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mdmasudrana9/mpms-dashboard-service/analytics"
	"github.com/mdmasudrana9/mpms-dashboard-service/gateway"
	"github.com/mdmasudrana9/mpms-dashboard-service/logging"
	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

type SprintService struct {
	gateway *gateway.Client
}

func NewSprintService(gw *gateway.Client) *SprintService {
	return &SprintService{gateway: gw}
}

func (s *SprintService) CreateSprint(ctx context.Context, sprint models.Sprint) (*models.Sprint, error) {
	var created models.Sprint
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPost,
		Path:   "/sprint/create-sprint",
		Body:   sprint,
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}
	return &created, nil
}

// GetAllSprints lists sprints, optionally narrowed to one project.
func (s *SprintService) GetAllSprints(ctx context.Context, projectID string) ([]models.Sprint, error) {
	query := url.Values{}
	if projectID != "" {
		query.Set("projectId", projectID)
	}

	var sprints []models.Sprint
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/sprint",
		Query:  query,
	}, &sprints)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sprints: %w", err)
	}
	return sprints, nil
}

func (s *SprintService) GetSprintByID(ctx context.Context, sprintID string) (*models.Sprint, error) {
	var sprint models.Sprint
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodGet,
		Path:   "/sprint/" + sprintID,
	}, &sprint)
	if err != nil {
		return nil, err
	}
	return &sprint, nil
}

func (s *SprintService) UpdateSprint(ctx context.Context, sprintID string, updates map[string]interface{}) (*models.Sprint, error) {
	var updated models.Sprint
	err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodPatch,
		Path:   "/sprint/" + sprintID,
		Body:   updates,
	}, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update sprint: %w", err)
	}
	return &updated, nil
}

// ReorderSprints applies the drag-and-drop ordering: orderedIDs must be an
// exact permutation of the project's sprint set. Each sprint whose position
// changed is patched with its new order and sprint number.
func (s *SprintService) ReorderSprints(ctx context.Context, projectID string, orderedIDs []string) ([]models.Sprint, error) {
	current, err := s.GetAllSprints(ctx, projectID)
	if err != nil {
		return nil, err
	}

	reordered, err := analytics.ReorderSprints(current, projectID, orderedIDs)
	if err != nil {
		return nil, fmt.Errorf("invalid sprint order: %w", err)
	}

	before := make(map[string]int, len(current))
	for _, sp := range current {
		before[sp.ID] = sp.Order
	}

	for _, sp := range reordered {
		if before[sp.ID] == sp.Order {
			continue
		}
		if _, err := s.UpdateSprint(ctx, sp.ID, map[string]interface{}{
			"order":        sp.Order,
			"sprintNumber": sp.SprintNumber,
		}); err != nil {
			return nil, fmt.Errorf("failed to persist order for sprint %s: %w", sp.ID, err)
		}
	}

	logging.Logger.Infof("Event ID: SPRINTS_REORDERED, Description: Reordered %d sprints for project %s", len(orderedIDs), projectID)
	return analytics.SortSprintsByOrder(reordered, projectID), nil
}

// DeleteSprint removes the sprint and restores the contiguous numbering of
// the project's remaining sprints.
func (s *SprintService) DeleteSprint(ctx context.Context, sprintID string) error {
	sprint, err := s.GetSprintByID(ctx, sprintID)
	if err != nil {
		return err
	}

	if err := s.gateway.Do(ctx, gateway.Request{
		Method: http.MethodDelete,
		Path:   "/sprint/" + sprintID,
	}, nil); err != nil {
		return fmt.Errorf("failed to delete sprint: %w", err)
	}

	remaining, err := s.GetAllSprints(ctx, sprint.ProjectID)
	if err != nil {
		return err
	}

	renumbered := analytics.RenumberSprints(remaining, sprint.ProjectID)
	before := make(map[string]int, len(remaining))
	for _, sp := range remaining {
		before[sp.ID] = sp.Order
	}
	for _, sp := range renumbered {
		if before[sp.ID] == sp.Order {
			continue
		}
		if _, err := s.UpdateSprint(ctx, sp.ID, map[string]interface{}{
			"order":        sp.Order,
			"sprintNumber": sp.SprintNumber,
		}); err != nil {
			return fmt.Errorf("failed to renumber sprint %s: %w", sp.ID, err)
		}
	}
	return nil
}
