package notice

import "time"

type Audience string

const (
	AudienceAll     Audience = "ALL"
	AudienceFaculty Audience = "FACULTY"
	AudienceStudent Audience = "STUDENT"
)

func (a Audience) Valid() bool {
	switch a {
	case AudienceAll, AudienceFaculty, AudienceStudent:
		return true
	}
	return false
}

// Notice is an announcement published by an admin to a target audience.
type Notice struct {
	ID        string
	Title     string
	Body      string
	Audience  Audience
	PostedBy  string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	PostedByName *string
}
