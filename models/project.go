package models

type ProjectStatus string

const (
	ProjectPlanned   ProjectStatus = "planned"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectArchived  ProjectStatus = "archived"
)

// Project mirrors the server-owned project entity. TotalTasks and
// CompletedTasks are denormalized counters maintained by the server; derived
// views recompute both from the task collection and never read them.
type Project struct {
	ID             string        `json:"_id,omitempty"`
	Title          string        `json:"title"`
	Client         string        `json:"client"`
	Description    string        `json:"description"`
	StartDate      Date          `json:"startDate"`
	EndDate        Date          `json:"endDate"`
	Budget         float64       `json:"budget"`
	Status         ProjectStatus `json:"status"`
	Thumbnail      string        `json:"thumbnail,omitempty"`
	TotalTasks     int           `json:"totalTasks"`
	CompletedTasks int           `json:"completedTasks"`
	CreatedAt      Date          `json:"createdAt,omitempty"`
}
