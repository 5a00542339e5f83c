package cron

import (
	"context"
	"testing"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAbsenteeRepo struct {
	attendance.AttendanceRepository
	gotDate string
	userIDs []string
}

func (f *fakeAbsenteeRepo) ListAbsentUserIDsOnDate(ctx context.Context, date string) ([]string, error) {
	f.gotDate = date
	return f.userIDs, nil
}

type fakePublisher struct {
	events []notification.Event
}

func (f *fakePublisher) Publish(ctx context.Context, event notification.Event) error {
	f.events = append(f.events, event)
	return nil
}

func TestUntilNextMidnight(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+30*60)

	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"morning", time.Date(2026, 3, 2, 8, 0, 0, 0, ist), 16 * time.Hour},
		{"just before rollover", time.Date(2026, 3, 2, 23, 59, 30, 0, ist), 30 * time.Second},
		{"exactly midnight", time.Date(2026, 3, 2, 0, 0, 0, 0, ist), 24 * time.Hour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, untilNextMidnight(tt.now))
		})
	}
}

func TestAddDailyJob(t *testing.T) {
	s := NewScheduler()
	s.AddDailyJob("digest", func(ctx context.Context) error { return nil })

	require.Len(t, s.jobs, 1)
	assert.True(t, s.jobs[0].Daily)
	assert.Equal(t, 24*time.Hour, s.jobs[0].Interval)
}

func TestDailyAbsenteeDigestCoversPreviousDay(t *testing.T) {
	// The job fires just after the midnight rollover; the digest is for the
	// day that ended, not the one that just began.
	justPastMidnight := time.Date(2026, 3, 3, 0, 0, 5, 0, time.UTC)

	repo := &fakeAbsenteeRepo{userIDs: []string{"user-1", "user-2"}}
	pub := &fakePublisher{}
	jobs := &ScheduleJobs{
		attendanceRepo: repo,
		notifier:       pub,
		clock:          clock.Fixed{T: justPastMidnight},
	}

	require.NoError(t, jobs.DailyAbsenteeDigest(context.Background()))

	assert.Equal(t, "2026-03-02", repo.gotDate)
	require.Len(t, pub.events, 1)
	assert.Equal(t, notification.KindAbsenceRecorded, pub.events[0].Kind)
	assert.Equal(t, []string{"user-1", "user-2"}, pub.events[0].UserIDs)
	assert.Contains(t, pub.events[0].Body, "2026-03-02")
}

func TestDailyAbsenteeDigestNoAbsentees(t *testing.T) {
	repo := &fakeAbsenteeRepo{}
	pub := &fakePublisher{}
	jobs := &ScheduleJobs{
		attendanceRepo: repo,
		notifier:       pub,
		clock:          clock.Fixed{T: time.Date(2026, 3, 3, 0, 0, 5, 0, time.UTC)},
	}

	require.NoError(t, jobs.DailyAbsenteeDigest(context.Background()))
	assert.Empty(t, pub.events)
}
