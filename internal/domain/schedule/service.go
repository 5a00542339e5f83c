package schedule

import "context"

// ScheduleService resolves a faculty member's live day schedule.
type ScheduleService interface {
	// GetFacultyTodaySchedule returns today's classes for the authenticated
	// faculty member, each annotated with its time-relative status and
	// display badge. "Today" and "now" come from the server clock.
	GetFacultyTodaySchedule(ctx context.Context) (TodayScheduleResponse, error)

	// GetFacultyTodayScheduleByID is the same projection for a known faculty
	// id; the background broadcaster uses it for connected dashboards.
	GetFacultyTodayScheduleByID(ctx context.Context, facultyID string) (TodayScheduleResponse, error)
}
