package timetable

import "time"

// Entry is one timetable cell: a subject assignment pinned to a weekday
// period. Day schedules for faculty are projected from these rows.
type Entry struct {
	ID           string
	AssignmentID string
	Day          string
	Period       int
	StartTime    string
	EndTime      string
	Shift        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	SubjectName *string
	SectionName *string
	FacultyName *string
}

// Days lists valid timetable weekdays in display order. Sunday carries no
// classes.
var Days = []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}
