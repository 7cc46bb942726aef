package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

func testSprints() []models.Sprint {
	return []models.Sprint{
		{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		{ID: "s2", ProjectID: "p1", Order: 1, SprintNumber: 2},
		{ID: "s3", ProjectID: "p1", Order: 2, SprintNumber: 3},
		{ID: "x1", ProjectID: "p2", Order: 0, SprintNumber: 1},
		{ID: "x2", ProjectID: "p2", Order: 1, SprintNumber: 2},
	}
}

func TestReorderSprints(t *testing.T) {
	result, err := ReorderSprints(testSprints(), "p1", []string{"s3", "s1", "s2"})
	require.NoError(t, err)

	positions := make(map[string]models.Sprint)
	for _, s := range result {
		positions[s.ID] = s
	}

	assert.Equal(t, 0, positions["s3"].Order)
	assert.Equal(t, 1, positions["s3"].SprintNumber)
	assert.Equal(t, 1, positions["s1"].Order)
	assert.Equal(t, 2, positions["s1"].SprintNumber)
	assert.Equal(t, 2, positions["s2"].Order)
	assert.Equal(t, 3, positions["s2"].SprintNumber)

	// Other projects pass through untouched.
	assert.Equal(t, 0, positions["x1"].Order)
	assert.Equal(t, 1, positions["x2"].Order)

	// Membership is unchanged.
	assert.Equal(t, "p1", positions["s3"].ProjectID)
	assert.Len(t, result, 5)
}

func TestReorderSprintsInvariant(t *testing.T) {
	result, err := ReorderSprints(testSprints(), "p1", []string{"s2", "s3", "s1"})
	require.NoError(t, err)

	seen := make(map[int]bool)
	for _, s := range result {
		if s.ProjectID != "p1" {
			continue
		}
		assert.Equal(t, s.Order+1, s.SprintNumber)
		seen[s.Order] = true
	}
	assert.Equal(t, map[int]bool{0: true, 1: true, 2: true}, seen)
}

func TestReorderSprintsRejectsPartialList(t *testing.T) {
	_, err := ReorderSprints(testSprints(), "p1", []string{"s3", "s1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReorder)
}

func TestReorderSprintsRejectsForeignSprint(t *testing.T) {
	_, err := ReorderSprints(testSprints(), "p1", []string{"s3", "s1", "x1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReorder)
}

func TestReorderSprintsRejectsDuplicate(t *testing.T) {
	_, err := ReorderSprints(testSprints(), "p1", []string{"s3", "s1", "s1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReorder)
}

func TestReorderSprintsDoesNotMutateInput(t *testing.T) {
	sprints := testSprints()
	_, err := ReorderSprints(sprints, "p1", []string{"s3", "s1", "s2"})
	require.NoError(t, err)
	assert.Equal(t, 0, sprints[0].Order, "input slice must not be mutated")
}

func TestRenumberSprintsAfterDelete(t *testing.T) {
	// s2 (order 1) was deleted; s1 and s3 remain with a gap.
	remaining := []models.Sprint{
		{ID: "s1", ProjectID: "p1", Order: 0, SprintNumber: 1},
		{ID: "s3", ProjectID: "p1", Order: 2, SprintNumber: 3},
		{ID: "x1", ProjectID: "p2", Order: 0, SprintNumber: 1},
	}

	result := RenumberSprints(remaining, "p1")

	positions := make(map[string]models.Sprint)
	for _, s := range result {
		positions[s.ID] = s
	}
	assert.Equal(t, 0, positions["s1"].Order)
	assert.Equal(t, 1, positions["s1"].SprintNumber)
	assert.Equal(t, 1, positions["s3"].Order)
	assert.Equal(t, 2, positions["s3"].SprintNumber)
	assert.Equal(t, 0, positions["x1"].Order)
}

func TestRenumberSprintsPreservesRelativeOrder(t *testing.T) {
	remaining := []models.Sprint{
		{ID: "c", ProjectID: "p", Order: 5},
		{ID: "a", ProjectID: "p", Order: 1},
		{ID: "b", ProjectID: "p", Order: 3},
	}

	ordered := SortSprintsByOrder(RenumberSprints(remaining, "p"), "p")
	require.Len(t, ordered, 3)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
	assert.Equal(t, "c", ordered[2].ID)
	assert.Equal(t, []int{0, 1, 2}, []int{ordered[0].Order, ordered[1].Order, ordered[2].Order})
}

func TestSortSprintsByOrder(t *testing.T) {
	sprints := []models.Sprint{
		{ID: "b", ProjectID: "p", Order: 1},
		{ID: "a", ProjectID: "p", Order: 0},
		{ID: "z", ProjectID: "other", Order: 0},
	}
	ordered := SortSprintsByOrder(sprints, "p")
	require.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].ID)
	assert.Equal(t, "b", ordered[1].ID)
}
