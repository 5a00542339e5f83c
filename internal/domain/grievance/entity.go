package grievance

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

type Category string

const (
	CategoryAcademic       Category = "ACADEMIC"
	CategoryAdministrative Category = "ADMINISTRATIVE"
	CategoryHostel         Category = "HOSTEL"
	CategoryOther          Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAcademic, CategoryAdministrative, CategoryHostel, CategoryOther:
		return true
	}
	return false
}

// Grievance is a complaint raised by a student or faculty member and
// worked by an admin. AttachmentPath points at uploaded evidence, if any.
type Grievance struct {
	ID             string
	UserID         string
	Subject        string
	Description    string
	Category       Category
	Status         Status
	Resolution     *string
	AttachmentPath *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// DTO
	RaisedByName *string
	RaisedByRole *string
}
