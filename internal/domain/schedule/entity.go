package schedule

import "time"

type Shift string

const (
	ShiftMorning   Shift = "MORNING"
	ShiftAfternoon Shift = "AFTERNOON"
)

// SubjectInfo is the subject slice of a schedule entry.
type SubjectInfo struct {
	ID          string
	Name        string
	SubjectCode string
	WeeklyHours int
}

// SectionInfo is the section slice of a schedule entry.
type SectionInfo struct {
	ID              string
	Name            string
	MaxStrength     int
	CurrentStrength int
}

// SemesterInfo is the semester slice of a schedule entry.
type SemesterInfo struct {
	ID      string
	Number  int
	Current bool
	Branch  string
}

// TimeSlot places a class on the weekly grid. Start and end times are wall
// clock "HH:MM" strings in the university's local time.
type TimeSlot struct {
	Day       string
	Period    int
	StartTime string
	EndTime   string
	Shift     Shift
}

// Entry is one scheduled class session for a faculty member on a given day.
// Entries are read-only projections of the timetable; AttendanceTaken is
// derived from the attendance records submitted for the entry's class and
// date.
type Entry struct {
	Subject         SubjectInfo
	Section         SectionInfo
	Semester        SemesterInfo
	TimeSlot        TimeSlot
	AttendanceTaken bool
}

// ClassKey identifies the class a schedule entry belongs to, independent of
// date. It keys marking sessions and attendance-taken lookups.
type ClassKey struct {
	SectionID  string
	SubjectID  string
	SemesterID string
	Period     int
	Shift      Shift
}

func (e Entry) Key() ClassKey {
	return ClassKey{
		SectionID:  e.Section.ID,
		SubjectID:  e.Subject.ID,
		SemesterID: e.Semester.ID,
		Period:     e.TimeSlot.Period,
		Shift:      e.TimeSlot.Shift,
	}
}

// Weekday returns the timetable day name for a date.
func Weekday(t time.Time) string {
	switch t.Weekday() {
	case time.Monday:
		return "MONDAY"
	case time.Tuesday:
		return "TUESDAY"
	case time.Wednesday:
		return "WEDNESDAY"
	case time.Thursday:
		return "THURSDAY"
	case time.Friday:
		return "FRIDAY"
	case time.Saturday:
		return "SATURDAY"
	default:
		return "SUNDAY"
	}
}
