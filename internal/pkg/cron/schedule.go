package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/campuscore/ums-backend-go/internal/pkg/sse"
	"github.com/jackc/pgx/v5"
)

// SessionSweeper reaps abandoned marking sessions.
type SessionSweeper interface {
	Sweep(maxIdle time.Duration, now time.Time) int
}

// StaleSessionMaxIdle is how long a marking session may sit untouched before
// the sweep job drops it.
const StaleSessionMaxIdle = 2 * time.Hour

type ScheduleJobs struct {
	scheduleSvc    schedule.ScheduleService
	facultyRepo    faculty.FacultyRepository
	attendanceRepo attendance.AttendanceRepository
	sessions       SessionSweeper
	hub            *sse.Hub
	notifier       notification.Publisher
	clock          clock.Clock
}

func NewScheduleJobs(
	scheduleSvc schedule.ScheduleService,
	facultyRepo faculty.FacultyRepository,
	attendanceRepo attendance.AttendanceRepository,
	sessions SessionSweeper,
	hub *sse.Hub,
	notifier notification.Publisher,
	clk clock.Clock,
) *ScheduleJobs {
	return &ScheduleJobs{
		scheduleSvc:    scheduleSvc,
		facultyRepo:    facultyRepo,
		attendanceRepo: attendanceRepo,
		sessions:       sessions,
		hub:            hub,
		notifier:       notifier,
		clock:          clk,
	}
}

func (j *ScheduleJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("broadcast_schedule_updates", 1*time.Minute, j.BroadcastScheduleUpdates)
	scheduler.AddJob("sweep_stale_sessions", 15*time.Minute, j.SweepStaleSessions)
	scheduler.AddDailyJob("daily_absentee_digest", j.DailyAbsenteeDigest)
}

// BroadcastScheduleUpdates pushes a fresh today-schedule to every connected
// faculty dashboard so status badges flip without a page reload.
func (j *ScheduleJobs) BroadcastScheduleUpdates(ctx context.Context) error {
	userIDs := j.hub.ActiveUsers()
	if len(userIDs) == 0 {
		return nil
	}

	pushed := 0
	for _, userID := range userIDs {
		f, err := j.facultyRepo.GetByUserID(ctx, userID)
		if err != nil {
			if err == pgx.ErrNoRows {
				continue
			}
			slog.Error("Cron: Failed to resolve faculty for schedule broadcast", "user_id", userID, "error", err)
			continue
		}

		today, err := j.scheduleSvc.GetFacultyTodayScheduleByID(ctx, f.ID)
		if err != nil {
			return fmt.Errorf("failed to build today schedule for faculty %s: %w", f.ID, err)
		}

		j.hub.Publish(userID, sse.Event{
			UserID: userID,
			Event:  "schedule_update",
			Data:   today,
		})
		pushed++
	}

	slog.Debug("Cron: Broadcast schedule updates", "connected", len(userIDs), "pushed", pushed)
	return nil
}

// SweepStaleSessions drops marking sessions that were abandoned or already
// submitted.
func (j *ScheduleJobs) SweepStaleSessions(ctx context.Context) error {
	removed := j.sessions.Sweep(StaleSessionMaxIdle, j.clock.Now())
	if removed > 0 {
		slog.Info("Cron: Swept stale marking sessions", "count", removed)
	}
	return nil
}

// DailyAbsenteeDigest notifies every student who was marked absent on the
// day that just ended. It runs at local midnight, so the digest always
// covers a full day.
func (j *ScheduleJobs) DailyAbsenteeDigest(ctx context.Context) error {
	date := j.clock.Now().AddDate(0, 0, -1).Format("2006-01-02")

	userIDs, err := j.attendanceRepo.ListAbsentUserIDsOnDate(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to list absentees for %s: %w", date, err)
	}
	if len(userIDs) == 0 {
		return nil
	}

	err = j.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindAbsenceRecorded,
		Title:   "Absence Recorded",
		Body:    fmt.Sprintf("You were marked absent in one or more classes on %s", date),
		UserIDs: userIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to publish absentee digest: %w", err)
	}

	slog.Info("Cron: Published absentee digest", "date", date, "recipients", len(userIDs))
	return nil
}
