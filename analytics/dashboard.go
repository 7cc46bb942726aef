package analytics

import (
	"sort"
	"time"

	"github.com/mdmasudrana9/mpms-dashboard-service/models"
)

const (
	upcomingTaskLimit   = 5
	topContributorLimit = 4
	recentProjectLimit  = 3
)

// Contributor is one row of the top-contributors ranking.
type Contributor struct {
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	TaskCount int    `json:"taskCount"`
}

// Summary is the dashboard view derived from the latest snapshots.
type Summary struct {
	TotalProjects     int                            `json:"totalProjects"`
	ActiveProjects    int                            `json:"activeProjects"`
	CompletedProjects int                            `json:"completedProjects"`
	TotalBudget       float64                        `json:"totalBudget"`
	TotalTasks        int                            `json:"totalTasks"`
	CompletedTasks    int                            `json:"completedTasks"`
	InProgressTasks   int                            `json:"inProgressTasks"`
	ProgressPercent   int                            `json:"progressPercent"`
	StatusCounts      map[models.TaskStatus]int      `json:"statusCounts"`
	PriorityCounts    map[models.TaskPriority]int    `json:"priorityCounts"`
	UrgentTasks       []models.Task                  `json:"urgentTasks"`
	OverdueTasks      []models.Task                  `json:"overdueTasks"`
	UpcomingTasks     []models.Task                  `json:"upcomingTasks"`
	TotalEstimate     float64                        `json:"totalEstimate"`
	CompletedEstimate float64                        `json:"completedEstimate"`
	ActiveMembers     int                            `json:"activeMembers"`
	RecentProjects    []models.Project               `json:"recentProjects"`
	TopContributors   []Contributor                  `json:"topContributors"`
}

// BuildSummary assembles the dashboard view. now anchors the overdue cut;
// overdue membership is recomputed on every call and may shift as wall-clock
// time crosses a due date, which is expected.
func BuildSummary(projects []models.Project, tasks []models.Task, members []models.TeamMember, now time.Time) Summary {
	s := Summary{
		TotalProjects:  len(projects),
		TotalTasks:     len(tasks),
		StatusCounts:   StatusCounts(tasks),
		PriorityCounts: PriorityCounts(tasks),
		UrgentTasks:    UrgentTasks(tasks),
		OverdueTasks:   OverdueTasks(tasks, now),
		UpcomingTasks:  UpcomingTasks(tasks, upcomingTaskLimit),
	}

	for _, p := range projects {
		s.TotalBudget += p.Budget
		switch p.Status {
		case models.ProjectActive:
			s.ActiveProjects++
			if len(s.RecentProjects) < recentProjectLimit {
				s.RecentProjects = append(s.RecentProjects, p)
			}
		case models.ProjectCompleted:
			s.CompletedProjects++
		}
	}

	s.CompletedTasks = s.StatusCounts[models.StatusDone]
	s.InProgressTasks = s.StatusCounts[models.StatusInProgress]
	s.ProgressPercent = ProgressPercent(s.CompletedTasks, s.TotalTasks)

	for _, t := range tasks {
		s.TotalEstimate += t.Estimate
		if t.Status == models.StatusDone {
			s.CompletedEstimate += t.Estimate
		}
	}

	for _, m := range members {
		if m.Status == models.MemberActive {
			s.ActiveMembers++
		}
	}

	s.TopContributors = TopContributors(tasks, members, topContributorLimit)
	return s
}

// StatusCounts partitions tasks by exact status value.
func StatusCounts(tasks []models.Task) map[models.TaskStatus]int {
	counts := make(map[models.TaskStatus]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}

// PriorityCounts partitions tasks by exact priority value.
func PriorityCounts(tasks []models.Task) map[models.TaskPriority]int {
	counts := make(map[models.TaskPriority]int)
	for _, t := range tasks {
		counts[t.Priority]++
	}
	return counts
}

// UrgentTasks selects unfinished tasks with urgent priority.
func UrgentTasks(tasks []models.Task) []models.Task {
	var urgent []models.Task
	for _, t := range tasks {
		if t.Priority == models.PriorityUrgent && t.Status != models.StatusDone {
			urgent = append(urgent, t)
		}
	}
	return urgent
}

// OverdueTasks selects unfinished tasks whose due date is strictly before
// now.
func OverdueTasks(tasks []models.Task, now time.Time) []models.Task {
	var overdue []models.Task
	for _, t := range tasks {
		if t.Status != models.StatusDone && t.DueDate.Before(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// UpcomingTasks returns the next unfinished tasks ordered by due date,
// truncated to limit. Ties keep their input order.
func UpcomingTasks(tasks []models.Task, limit int) []models.Task {
	var upcoming []models.Task
	for _, t := range tasks {
		if t.Status != models.StatusDone {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Time.Before(upcoming[j].DueDate.Time)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// TopContributors ranks assignees by assigned-task count, descending,
// truncated to limit. A task with several assignees counts once per
// assignee. Ties keep the order assignees first appeared across the task
// list, so the ranking is deterministic for a given input order. Assignees
// with no matching team member get a synthesized label.
func TopContributors(tasks []models.Task, members []models.TeamMember, limit int) []Contributor {
	counts := make(map[string]int)
	var order []string
	for _, t := range tasks {
		for _, a := range t.Assignees {
			if _, seen := counts[a]; !seen {
				order = append(order, a)
			}
			counts[a]++
		}
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}

	contributors := make([]Contributor, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = "User ID: " + id
		}
		contributors = append(contributors, Contributor{UserID: id, Name: name, TaskCount: counts[id]})
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].TaskCount > contributors[j].TaskCount
	})
	if len(contributors) > limit {
		contributors = contributors[:limit]
	}
	return contributors
}
