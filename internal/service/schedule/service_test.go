package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScheduleRepo struct {
	entries []schedule.Entry
	err     error

	gotFacultyID string
	gotDay       string
	gotDate      string
}

func (f *fakeScheduleRepo) GetFacultyDaySchedule(ctx context.Context, facultyID, day, date string) ([]schedule.Entry, error) {
	f.gotFacultyID = facultyID
	f.gotDay = day
	f.gotDate = date
	return f.entries, f.err
}

func facultyContext(t *testing.T, facultyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    "user-1",
		"faculty_id": facultyID,
		"role":       "FACULTY",
		"type":       "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGetFacultyTodaySchedule(t *testing.T) {
	// Monday 10:05, in the middle of period 2
	now := time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)
	repo := &fakeScheduleRepo{
		entries: []schedule.Entry{
			{
				Subject:  schedule.SubjectInfo{ID: "sub-1", Name: "Data Structures"},
				Section:  schedule.SectionInfo{ID: "sec-1", Name: "CSE-A"},
				Semester: schedule.SemesterInfo{ID: "sem-1", Number: 3},
				TimeSlot: schedule.TimeSlot{Day: "MONDAY", Period: 1, StartTime: "09:00", EndTime: "09:50", Shift: schedule.ShiftMorning},
			},
			{
				Subject:  schedule.SubjectInfo{ID: "sub-2", Name: "Operating Systems"},
				Section:  schedule.SectionInfo{ID: "sec-1", Name: "CSE-A"},
				Semester: schedule.SemesterInfo{ID: "sem-1", Number: 3},
				TimeSlot: schedule.TimeSlot{Day: "MONDAY", Period: 2, StartTime: "10:00", EndTime: "10:50", Shift: schedule.ShiftMorning},
			},
			{
				Subject:         schedule.SubjectInfo{ID: "sub-3", Name: "Databases"},
				Section:         schedule.SectionInfo{ID: "sec-2", Name: "CSE-B"},
				Semester:        schedule.SemesterInfo{ID: "sem-1", Number: 3},
				TimeSlot:        schedule.TimeSlot{Day: "MONDAY", Period: 5, StartTime: "14:00", EndTime: "14:50", Shift: schedule.ShiftAfternoon},
				AttendanceTaken: true,
			},
		},
	}
	svc := NewScheduleService(repo, clock.Fixed{T: now})

	result, err := svc.GetFacultyTodaySchedule(facultyContext(t, "fac-1"))
	require.NoError(t, err)

	assert.Equal(t, "fac-1", repo.gotFacultyID)
	assert.Equal(t, "MONDAY", repo.gotDay)
	assert.Equal(t, "2026-03-02", repo.gotDate)

	assert.Equal(t, "2026-03-02", result.Date)
	assert.Equal(t, "MONDAY", result.Day)
	assert.Equal(t, "10:05", result.Now)
	require.Len(t, result.Entries, 3)

	assert.Equal(t, schedule.ClassPast, result.Entries[0].Status)
	assert.Equal(t, schedule.BadgePending, result.Entries[0].Badge)

	assert.Equal(t, schedule.ClassCurrent, result.Entries[1].Status)
	assert.Equal(t, schedule.BadgeLiveNow, result.Entries[1].Badge)

	// Taken attendance wins over "upcoming"
	assert.Equal(t, schedule.ClassUpcoming, result.Entries[2].Status)
	assert.Equal(t, schedule.BadgeCompleted, result.Entries[2].Badge)
}

func TestGetFacultyTodayScheduleEmptyDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewScheduleService(repo, clock.Fixed{T: time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)})

	result, err := svc.GetFacultyTodaySchedule(facultyContext(t, "fac-1"))
	require.NoError(t, err)

	assert.Equal(t, "SUNDAY", result.Day)
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
}

func TestGetFacultyTodayScheduleMissingFacultyClaim(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": "user-1",
		"role":    "STUDENT",
		"type":    "access",
	})
	require.NoError(t, err)
	ctx := jwtauth.NewContext(context.Background(), token, nil)

	svc := NewScheduleService(&fakeScheduleRepo{}, clock.Fixed{T: time.Now()})
	_, err = svc.GetFacultyTodaySchedule(ctx)
	assert.ErrorIs(t, err, schedule.ErrFacultyNotFound)
}
