package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
	clock        clock.Clock
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository, clk clock.Clock) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		clock:        clk,
	}
}

// GetFacultyTodaySchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetFacultyTodaySchedule(ctx context.Context) (schedule.TodayScheduleResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return schedule.TodayScheduleResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	facultyID, ok := claims["faculty_id"].(string)
	if !ok || facultyID == "" {
		return schedule.TodayScheduleResponse{}, schedule.ErrFacultyNotFound
	}

	return s.GetFacultyTodayScheduleByID(ctx, facultyID)
}

// GetFacultyTodayScheduleByID implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetFacultyTodayScheduleByID(ctx context.Context, facultyID string) (schedule.TodayScheduleResponse, error) {
	now := s.clock.Now()
	date := now.Format("2006-01-02")
	day := schedule.Weekday(now)

	entries, err := s.scheduleRepo.GetFacultyDaySchedule(ctx, facultyID, day, date)
	if err != nil {
		return schedule.TodayScheduleResponse{}, fmt.Errorf("failed to get day schedule: %w", err)
	}

	response := schedule.TodayScheduleResponse{
		Date:    date,
		Day:     day,
		Now:     now.Format("15:04"),
		Entries: make([]schedule.EntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, mapEntryToResponse(entry, now))
	}

	return response, nil
}

func mapEntryToResponse(e schedule.Entry, now time.Time) schedule.EntryResponse {
	return schedule.EntryResponse{
		Subject: schedule.SubjectResponse{
			ID:          e.Subject.ID,
			Name:        e.Subject.Name,
			SubjectCode: e.Subject.SubjectCode,
			WeeklyHours: e.Subject.WeeklyHours,
		},
		Section: schedule.SectionResponse{
			ID:              e.Section.ID,
			Name:            e.Section.Name,
			MaxStrength:     e.Section.MaxStrength,
			CurrentStrength: e.Section.CurrentStrength,
		},
		Semester: schedule.SemesterResponse{
			ID:      e.Semester.ID,
			Number:  e.Semester.Number,
			Current: e.Semester.Current,
			Branch:  e.Semester.Branch,
		},
		TimeSlot: schedule.TimeSlotResponse{
			Day:       e.TimeSlot.Day,
			Period:    e.TimeSlot.Period,
			StartTime: e.TimeSlot.StartTime,
			EndTime:   e.TimeSlot.EndTime,
			Shift:     e.TimeSlot.Shift,
		},
		AttendanceTaken: e.AttendanceTaken,
		Status:          schedule.Status(e.TimeSlot, now),
		Badge:           schedule.StatusBadge(e, now),
	}
}
