package analytics

import (
	"sort"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

// ProjectProgress is the report rollup for one project. Task and hour
// totals are recomputed from the task collection; the denormalized counters
// stored on the project are not consulted.
type ProjectProgress struct {
	Project           models.Project `json:"project"`
	TotalTasks        int            `json:"totalTasks"`
	CompletedTasks    int            `json:"completedTasks"`
	RemainingTasks    int            `json:"remainingTasks"`
	ProgressPercent   int            `json:"progressPercent"`
	TotalEstimate     float64        `json:"totalEstimate"`
	CompletedEstimate float64        `json:"completedEstimate"`
	RemainingEstimate float64        `json:"remainingEstimate"`
}

// ProjectProgressRollup computes the per-project report rows, one per
// project in input order.
func ProjectProgressRollup(projects []models.Project, tasks []models.Task) []ProjectProgress {
	rollup := make([]ProjectProgress, 0, len(projects))
	for _, p := range projects {
		row := ProjectProgress{Project: p}
		for _, t := range tasks {
			if t.ProjectID != p.ID {
				continue
			}
			row.TotalTasks++
			row.TotalEstimate += t.Estimate
			if t.Status == models.StatusDone {
				row.CompletedTasks++
				row.CompletedEstimate += t.Estimate
			}
		}
		row.RemainingTasks = row.TotalTasks - row.CompletedTasks
		row.RemainingEstimate = row.TotalEstimate - row.CompletedEstimate
		row.ProgressPercent = ProgressPercent(row.CompletedTasks, row.TotalTasks)
		rollup = append(rollup, row)
	}
	return rollup
}

// UserTime is the time-logged summary for one assignee.
type UserTime struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	TotalHours     float64 `json:"totalHours"`
	CompletedHours float64 `json:"completedHours"`
	RemainingHours float64 `json:"remainingHours"`
	TaskCount      int     `json:"taskCount"`
}

// UserTimeSummary splits each task's estimate evenly across its assignees
// and accumulates per-assignee totals. Hours from done tasks land in the
// completed bucket, everything else in remaining. Rows are sorted by total
// hours, descending; ties keep first-appearance order.
func UserTimeSummary(tasks []models.Task, members []models.TeamMember) []UserTime {
	totals := make(map[string]*UserTime)
	var order []string

	for _, t := range tasks {
		if len(t.Assignees) == 0 {
			continue
		}
		share := t.Estimate / float64(len(t.Assignees))
		for _, a := range t.Assignees {
			row, ok := totals[a]
			if !ok {
				row = &UserTime{UserID: a}
				totals[a] = row
				order = append(order, a)
			}
			row.TotalHours += share
			row.TaskCount++
			if t.Status == models.StatusDone {
				row.CompletedHours += share
			} else {
				row.RemainingHours += share
			}
		}
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	summary := make([]UserTime, 0, len(order))
	for _, id := range order {
		row := *totals[id]
		if name, ok := names[id]; ok {
			row.Name = name
		} else {
			row.Name = "User ID: " + id
		}
		summary = append(summary, row)
	}

	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].TotalHours > summary[j].TotalHours
	})
	return summary
}

// FilterTasksByProject returns the tasks belonging to projectID, or all
// tasks when projectID is empty (the report page's "all projects" view).
func FilterTasksByProject(tasks []models.Task, projectID string) []models.Task {
	if projectID == "" {
		return tasks
	}
	var filtered []models.Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
