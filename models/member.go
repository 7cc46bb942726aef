package models

type MemberStatus string

const (
	MemberActive  MemberStatus = "active"
	MemberAway    MemberStatus = "away"
	MemberOffline MemberStatus = "offline"
)

type TeamMember struct {
	ID         string       `json:"_id,omitempty"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Department string       `json:"department,omitempty"`
	Skills     []string     `json:"skills"`
	Status     MemberStatus `json:"status"`
	Role       string       `json:"role,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	CreatedAt  *Date        `json:"createdAt,omitempty"`
}
