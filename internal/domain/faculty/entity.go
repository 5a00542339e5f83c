package faculty

import "time"

// Faculty is a teaching staff record.
type Faculty struct {
	ID           string
	Name         string
	EmployeeCode string
	Email        string
	Department   string
	UserID       *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
