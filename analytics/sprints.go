package analytics

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

// ErrInvalidReorder reports a reorder list that is not a complete
// permutation of the target project's sprint set.
var ErrInvalidReorder = errors.New("invalid sprint reorder list")

// ReorderSprints rewrites the positions of projectID's sprints to match
// orderedIDs: the sprint at index i gets order i and sprintNumber i+1.
// Sprints of other projects pass through untouched, in their input
// positions relative to each other.
//
// orderedIDs must be an exact permutation of the project's current sprint
// set. A missing, duplicated, or foreign identifier is an error — a partial
// list would silently shrink the sprint set, so it is rejected instead.
func ReorderSprints(sprints []models.Sprint, projectID string, orderedIDs []string) ([]models.Sprint, error) {
	byID := make(map[string]models.Sprint)
	projectCount := 0
	for _, s := range sprints {
		if s.ProjectID == projectID {
			byID[s.ID] = s
			projectCount++
		}
	}

	if len(orderedIDs) != projectCount {
		return nil, fmt.Errorf("%w: list has %d sprints, project has %d", ErrInvalidReorder, len(orderedIDs), projectCount)
	}

	position := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("%w: sprint %s does not belong to project %s", ErrInvalidReorder, id, projectID)
		}
		if _, dup := position[id]; dup {
			return nil, fmt.Errorf("%w: sprint %s appears twice", ErrInvalidReorder, id)
		}
		position[id] = i
	}

	result := make([]models.Sprint, 0, len(sprints))
	for _, s := range sprints {
		if s.ProjectID == projectID {
			idx := position[s.ID]
			s.Order = idx
			s.SprintNumber = idx + 1
		}
		result = append(result, s)
	}
	return result, nil
}

// RenumberSprints restores the contiguous 0-based order / 1-based
// sprintNumber invariant for projectID's sprints, preserving their current
// relative order. Used after a sprint is deleted. Other projects' sprints
// pass through untouched.
func RenumberSprints(sprints []models.Sprint, projectID string) []models.Sprint {
	var project []*models.Sprint
	result := make([]models.Sprint, len(sprints))
	copy(result, sprints)
	for i := range result {
		if result[i].ProjectID == projectID {
			project = append(project, &result[i])
		}
	}

	sort.SliceStable(project, func(i, j int) bool {
		return project[i].Order < project[j].Order
	})
	for i, s := range project {
		s.Order = i
		s.SprintNumber = i + 1
	}
	return result
}

// SortSprintsByOrder returns projectID's sprints in display order.
func SortSprintsByOrder(sprints []models.Sprint, projectID string) []models.Sprint {
	var project []models.Sprint
	for _, s := range sprints {
		if s.ProjectID == projectID {
			project = append(project, s)
		}
	}
	sort.SliceStable(project, func(i, j int) bool {
		return project[i].Order < project[j].Order
	})
	return project
}
