package models

// Sprint positions are redundant on purpose: Order is the 0-based position
// within the owning project and SprintNumber is always Order+1. Both must be
// restored to a contiguous sequence after any reorder or delete.
type Sprint struct {
	ID           string `json:"_id,omitempty"`
	ProjectID    string `json:"projectId"`
	Title        string `json:"title"`
	SprintNumber int    `json:"sprintNumber"`
	StartDate    Date   `json:"startDate"`
	EndDate      Date   `json:"endDate"`
	Order        int    `json:"order"`
	CreatedAt    Date   `json:"createdAt,omitempty"`
}
