package models

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusReview     TaskStatus = "review"
	StatusDone       TaskStatus = "done"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type Subtask struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Task struct {
	ID          string       `json:"_id,omitempty"`
	ProjectID   string       `json:"projectId"`
	SprintID    string       `json:"sprintId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Assignees   []string     `json:"assignees"`
	Estimate    float64      `json:"estimate"` // hours
	Priority    TaskPriority `json:"priority"`
	Status      TaskStatus   `json:"status"`
	DueDate     Date         `json:"dueDate"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Subtasks    []Subtask    `json:"subtasks,omitempty"`
	CreatedAt   Date         `json:"createdAt,omitempty"`
}

// TaskFilter narrows a task listing; zero-value fields are omitted from the
// query string.
type TaskFilter struct {
	ProjectID string
	SprintID  string
	Status    TaskStatus
	Priority  TaskPriority
}
