package schedule

import "context"

// ScheduleRepository projects the timetable into per-day schedules.
type ScheduleRepository interface {
	// GetFacultyDaySchedule returns the entries a faculty member teaches on
	// the given day name, ordered by period. AttendanceTaken reflects the
	// attendance records already submitted for the given date (YYYY-MM-DD).
	GetFacultyDaySchedule(ctx context.Context, facultyID, day, date string) ([]Entry, error)
}
