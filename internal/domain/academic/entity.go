package academic

import "time"

// Subject is a taught course unit.
type Subject struct {
	ID          string
	Name        string
	SubjectCode string
	WeeklyHours int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Section is a class group of students.
type Section struct {
	ID              string
	Name            string
	MaxStrength     int
	CurrentStrength int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Semester is one term of a branch's programme. At most one semester per
// branch is current.
type Semester struct {
	ID        string
	Number    int
	Current   bool
	Branch    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SubjectAssignment binds a faculty member to teach a subject for a
// section+semester. Timetable entries and day schedules hang off it.
type SubjectAssignment struct {
	ID         string
	FacultyID  string
	SubjectID  string
	SectionID  string
	SemesterID string
	CreatedAt  time.Time

	// DTO
	FacultyName *string
	SubjectName *string
	SectionName *string
}
