package attendance

import (
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
)

// Status is a per-student attendance decision. The zero value means the
// student has not been marked yet; submission requires every roster row to
// carry a non-empty status.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLate    Status = "LATE"
	StatusExcused Status = "EXCUSED"
)

// Valid reports whether s is one of the four markable statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// RosterStudent is one row of a marking session's roster. Status and Remarks
// are mutated in memory while the session is being edited and discarded when
// the session ends.
type RosterStudent struct {
	ID      string
	Name    string
	RollNo  string
	Status  Status
	Remarks string
}

// Record is one persisted per-student attendance row, written only by a
// successful session submission.
type Record struct {
	ID         string
	StudentID  string
	SectionID  string
	SubjectID  string
	SemesterID string
	Date       time.Time
	Period     int
	Shift      schedule.Shift
	Status     Status
	Remarks    string
	MarkedBy   string
	CreatedAt  time.Time

	// DTO
	StudentName *string
	RollNo      *string
	SubjectName *string
}
