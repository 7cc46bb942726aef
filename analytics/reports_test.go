package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

// The two-task scenario: T1 done with 4h on A, T2 todo with 6h split
// between A and B.
func scenarioTasks() []models.Task {
	return []models.Task{
		{ID: "T1", ProjectID: "P", Status: models.StatusDone, Estimate: 4, Assignees: []string{"A"}},
		{ID: "T2", ProjectID: "P", Status: models.StatusTodo, Estimate: 6, Assignees: []string{"A", "B"}},
	}
}

func TestProjectProgressRollupScenario(t *testing.T) {
	projects := []models.Project{{ID: "P", Title: "Website"}}
	rollup := ProjectProgressRollup(projects, scenarioTasks())

	require.Len(t, rollup, 1)
	row := rollup[0]
	assert.Equal(t, 2, row.TotalTasks)
	assert.Equal(t, 1, row.CompletedTasks)
	assert.Equal(t, 1, row.RemainingTasks)
	assert.Equal(t, 50, row.ProgressPercent)
	assert.Equal(t, 10.0, row.TotalEstimate)
	assert.Equal(t, 4.0, row.CompletedEstimate)
	assert.Equal(t, 6.0, row.RemainingEstimate)
}

func TestProjectProgressRollupIgnoresStoredCounters(t *testing.T) {
	// The server's denormalized counters disagree with the task collection;
	// the rollup must derive from tasks alone.
	projects := []models.Project{{ID: "P", TotalTasks: 99, CompletedTasks: 42}}
	rollup := ProjectProgressRollup(projects, scenarioTasks())

	require.Len(t, rollup, 1)
	assert.Equal(t, 2, rollup[0].TotalTasks)
	assert.Equal(t, 1, rollup[0].CompletedTasks)
}

func TestProjectProgressRollupEmptyProject(t *testing.T) {
	projects := []models.Project{{ID: "empty"}}
	rollup := ProjectProgressRollup(projects, scenarioTasks())

	require.Len(t, rollup, 1)
	assert.Equal(t, 0, rollup[0].TotalTasks)
	assert.Equal(t, 0, rollup[0].ProgressPercent)
}

func TestUserTimeSummaryScenario(t *testing.T) {
	members := []models.TeamMember{{ID: "A", Name: "Alice"}, {ID: "B", Name: "Bob"}}
	summary := UserTimeSummary(scenarioTasks(), members)

	require.Len(t, summary, 2)

	a := summary[0]
	assert.Equal(t, "A", a.UserID)
	assert.Equal(t, "Alice", a.Name)
	assert.Equal(t, 7.0, a.TotalHours)
	assert.Equal(t, 4.0, a.CompletedHours)
	assert.Equal(t, 3.0, a.RemainingHours)
	assert.Equal(t, 2, a.TaskCount)

	b := summary[1]
	assert.Equal(t, "B", b.UserID)
	assert.Equal(t, 3.0, b.TotalHours)
	assert.Equal(t, 0.0, b.CompletedHours)
	assert.Equal(t, 3.0, b.RemainingHours)
	assert.Equal(t, 1, b.TaskCount)
}

func TestUserTimeSummaryInvariants(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Status: models.StatusDone, Estimate: 8, Assignees: []string{"x", "y"}},
		{ID: "2", Status: models.StatusReview, Estimate: 5, Assignees: []string{"y"}},
		{ID: "3", Status: models.StatusTodo, Estimate: 3, Assignees: []string{"x", "y", "z"}},
		{ID: "4", Status: models.StatusTodo, Estimate: 2, Assignees: nil},
	}
	summary := UserTimeSummary(tasks, nil)

	var grandTotal float64
	for _, row := range summary {
		assert.InDelta(t, row.TotalHours, row.CompletedHours+row.RemainingHours, 1e-9,
			"completed + remaining must equal total for %s", row.UserID)
		grandTotal += row.TotalHours
	}
	// Tasks with assignees contribute their full estimate; task 4 has no
	// assignees and contributes nothing.
	assert.InDelta(t, 16.0, grandTotal, 1e-9)
}

func TestUserTimeSummarySortedByTotalDescending(t *testing.T) {
	summary := UserTimeSummary(scenarioTasks(), nil)
	require.Len(t, summary, 2)
	assert.GreaterOrEqual(t, summary[0].TotalHours, summary[1].TotalHours)
	assert.Equal(t, "User ID: A", summary[0].Name)
}

func TestFilterTasksByProject(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", ProjectID: "p1"},
		{ID: "2", ProjectID: "p2"},
		{ID: "3", ProjectID: "p1"},
	}

	assert.Len(t, FilterTasksByProject(tasks, ""), 3)
	filtered := FilterTasksByProject(tasks, "p1")
	require.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].ID)
	assert.Equal(t, "3", filtered[1].ID)
}
