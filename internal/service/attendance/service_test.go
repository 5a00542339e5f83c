package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday, period 2 in progress
var serviceNow = time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)

type fakeScheduleRepo struct {
	entries []schedule.Entry
	err     error
}

func (f *fakeScheduleRepo) GetFacultyDaySchedule(ctx context.Context, facultyID, day, date string) ([]schedule.Entry, error) {
	return f.entries, f.err
}

type fakeStudentRepo struct {
	student.StudentRepository
	students []student.Student
	err      error
}

func (f *fakeStudentRepo) GetBySection(ctx context.Context, sectionID, semesterID string) ([]student.Student, error) {
	return f.students, f.err
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	taken         bool
	hasTakenDates []string
	inserts       [][]attendance.Record
}

func (f *fakeAttendanceRepo) HasTaken(ctx context.Context, key schedule.ClassKey, date string) (bool, error) {
	f.hasTakenDates = append(f.hasTakenDates, date)
	return f.taken, nil
}

func (f *fakeAttendanceRepo) BulkCreate(ctx context.Context, records []attendance.Record) error {
	f.inserts = append(f.inserts, records)
	return nil
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

func scheduledEntry(taken bool) schedule.Entry {
	return schedule.Entry{
		Subject:  schedule.SubjectInfo{ID: "sub-1", Name: "Data Structures"},
		Section:  schedule.SectionInfo{ID: "sec-1", Name: "CSE-A"},
		Semester: schedule.SemesterInfo{ID: "sem-1", Number: 3},
		TimeSlot: schedule.TimeSlot{
			Day:       "MONDAY",
			Period:    2,
			StartTime: "10:00",
			EndTime:   "10:50",
			Shift:     schedule.ShiftMorning,
		},
		AttendanceTaken: taken,
	}
}

func sectionRoster(n int) []student.Student {
	students := make([]student.Student, 0, n)
	for i := 1; i <= n; i++ {
		students = append(students, student.Student{
			ID:     fmt.Sprintf("stu-%03d", i),
			Name:   fmt.Sprintf("Student %03d", i),
			RollNo: fmt.Sprintf("21CS%03d", i),
		})
	}
	return students
}

func startRequest() attendance.StartSessionRequest {
	return attendance.StartSessionRequest{
		SectionID:  "sec-1",
		SubjectID:  "sub-1",
		SemesterID: "sem-1",
		Period:     2,
		Shift:      schedule.ShiftMorning,
	}
}

func newTestService(scheduleRepo *fakeScheduleRepo, studentRepo *fakeStudentRepo) (attendance.AttendanceService, *SessionStore) {
	sessions := NewSessionStore()
	svc := NewAttendanceService(nil, scheduleRepo, nil, studentRepo, nil, sessions, clock.Fixed{T: serviceNow}, nil)
	return svc, sessions
}

// newSubmitService wires the service against fakes with the transaction
// runner replaced, so Submit can run without a database.
func newSubmitService(attRepo *fakeAttendanceRepo, rosterSize int, clk clock.Clock) (attendance.AttendanceService, *SessionStore) {
	sessions := NewSessionStore()
	return &AttendanceServiceImpl{
		scheduleRepo:   &fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		attendanceRepo: attRepo,
		studentRepo:    &fakeStudentRepo{students: sectionRoster(rosterSize)},
		sessions:       sessions,
		clock:          clk,
		runTx: func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error {
			return fn(nil)
		},
	}, sessions
}

func TestStartSession(t *testing.T) {
	svc, sessions := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(45)},
	)

	view, err := svc.StartSession(facultyContext(t, "fac-1"), startRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, view.SessionID)
	assert.Equal(t, attendance.SessionEditing, view.State)
	assert.Equal(t, "Data Structures", view.Entry.Subject.Name)
	assert.Equal(t, schedule.BadgeLiveNow, view.Entry.Badge)
	assert.Len(t, view.Rows, attendance.PageSize)
	assert.Equal(t, 45, view.Meta.TotalRows)
	assert.Equal(t, 3, view.Meta.TotalPages)
	assert.Equal(t, 45, view.Stats.Unmarked)
	assert.Equal(t, 1, sessions.Len())
}

func TestStartSessionNotScheduledToday(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(5)},
	)

	req := startRequest()
	req.Period = 6 // not on today's schedule

	_, err := svc.StartSession(facultyContext(t, "fac-1"), req)
	assert.ErrorIs(t, err, attendance.ErrNotScheduledToday)
}

func TestStartSessionAlreadyTaken(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(true)}},
		&fakeStudentRepo{students: sectionRoster(5)},
	)

	_, err := svc.StartSession(facultyContext(t, "fac-1"), startRequest())
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyTaken)
}

func TestStartSessionEmptyRoster(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{},
	)

	_, err := svc.StartSession(facultyContext(t, "fac-1"), startRequest())
	assert.ErrorIs(t, err, attendance.ErrEmptyRoster)
}

func TestStartSessionReplacesExisting(t *testing.T) {
	svc, sessions := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(5)},
	)
	ctx := facultyContext(t, "fac-1")

	first, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)
	second, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.SessionID, second.SessionID)
	assert.Equal(t, 1, sessions.Len())

	// The replaced session is gone
	_, err = svc.GetSession(ctx, first.SessionID, "", 1)
	assert.ErrorIs(t, err, attendance.ErrSessionNotFound)
}

func TestGetSessionOwnership(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(5)},
	)

	view, err := svc.StartSession(facultyContext(t, "fac-1"), startRequest())
	require.NoError(t, err)

	// Another faculty member cannot see the session
	_, err = svc.GetSession(facultyContext(t, "fac-2"), view.SessionID, "", 1)
	assert.ErrorIs(t, err, attendance.ErrSessionNotFound)
}

func TestGetSessionSearchAndPaging(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(45)},
	)
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	page3, err := svc.GetSession(ctx, view.SessionID, "", 3)
	require.NoError(t, err)
	assert.Len(t, page3.Rows, 5)
	assert.Equal(t, 3, page3.Meta.Page)

	filtered, err := svc.GetSession(ctx, view.SessionID, "student 001", 1)
	require.NoError(t, err)
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, "stu-001", filtered.Rows[0].StudentID)
	assert.Equal(t, 1, filtered.Meta.TotalRows)
}

func TestMarkStudentUpdatesStats(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(4)},
	)
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	present := attendance.StatusPresent
	stats, err := svc.MarkStudent(ctx, view.SessionID, "stu-001", attendance.MarkStudentRequest{Status: &present})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 3, stats.Unmarked)
	assert.InDelta(t, 25.0, stats.PresentPercent, 0.001)

	remarks := "medical"
	stats, err = svc.MarkStudent(ctx, view.SessionID, "stu-002", attendance.MarkStudentRequest{Remarks: &remarks})
	require.NoError(t, err)
	// Remarks alone do not change the marked counts
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 3, stats.Unmarked)
}

func TestBulkMarkAllThenPageOverride(t *testing.T) {
	svc, _ := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(45)},
	)
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	stats, err := svc.BulkMark(ctx, view.SessionID, attendance.BulkMarkRequest{
		Status: attendance.StatusPresent,
		Scope:  attendance.BulkScopeAll,
	})
	require.NoError(t, err)
	assert.Equal(t, 45, stats.Present)
	assert.Equal(t, 0, stats.Unmarked)

	stats, err = svc.BulkMark(ctx, view.SessionID, attendance.BulkMarkRequest{
		Status: attendance.StatusAbsent,
		Scope:  attendance.BulkScopePage,
		Page:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, stats.Present)
	assert.Equal(t, 5, stats.Absent)
}

func TestCancelSession(t *testing.T) {
	svc, sessions := newTestService(
		&fakeScheduleRepo{entries: []schedule.Entry{scheduledEntry(false)}},
		&fakeStudentRepo{students: sectionRoster(5)},
	)
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, view.SessionID))
	assert.Equal(t, 0, sessions.Len())

	assert.ErrorIs(t, svc.CancelSession(ctx, view.SessionID), attendance.ErrSessionNotFound)
}

func TestSubmitPersistsFullRoster(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc, sessions := newSubmitService(attRepo, 45, clock.Fixed{T: serviceNow})
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)
	_, err = svc.BulkMark(ctx, view.SessionID, attendance.BulkMarkRequest{
		Status: attendance.StatusPresent,
		Scope:  attendance.BulkScopeAll,
	})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, view.SessionID)
	require.NoError(t, err)
	assert.Equal(t, view.SessionID, resp.SessionID)
	assert.Equal(t, "2026-03-02", resp.Date)
	assert.Equal(t, 45, resp.RecordsSaved)

	// Exactly one bulk insert carrying the whole roster in roster order
	require.Len(t, attRepo.inserts, 1)
	records := attRepo.inserts[0]
	require.Len(t, records, 45)
	assert.Equal(t, "stu-001", records[0].StudentID)
	assert.Equal(t, "stu-045", records[44].StudentID)
	assert.Equal(t, attendance.StatusPresent, records[0].Status)
	assert.Equal(t, "fac-1", records[0].MarkedBy)

	assert.Equal(t, []string{"2026-03-02"}, attRepo.hasTakenDates)
	assert.Equal(t, 0, sessions.Len())
}

func TestSubmitIncompleteRoster(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	svc, _ := newSubmitService(attRepo, 5, clock.Fixed{T: serviceNow})
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)

	present := attendance.StatusPresent
	_, err = svc.MarkStudent(ctx, view.SessionID, "stu-001", attendance.MarkStudentRequest{Status: &present})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, view.SessionID)
	assert.ErrorIs(t, err, attendance.ErrIncompleteRoster)

	// Nothing reached the repository
	assert.Empty(t, attRepo.hasTakenDates)
	assert.Empty(t, attRepo.inserts)
}

func TestSubmitAlreadyTakenKeepsSessionEditable(t *testing.T) {
	attRepo := &fakeAttendanceRepo{taken: true}
	svc, sessions := newSubmitService(attRepo, 5, clock.Fixed{T: serviceNow})
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)
	_, err = svc.BulkMark(ctx, view.SessionID, attendance.BulkMarkRequest{
		Status: attendance.StatusPresent,
		Scope:  attendance.BulkScopeAll,
	})
	require.NoError(t, err)

	_, err = svc.Submit(ctx, view.SessionID)
	assert.ErrorIs(t, err, attendance.ErrAttendanceAlreadyTaken)
	assert.Empty(t, attRepo.inserts)
	assert.Equal(t, 1, sessions.Len())

	// The failed submit keeps every edit and the session stays editable
	absent := attendance.StatusAbsent
	stats, err := svc.MarkStudent(ctx, view.SessionID, "stu-001", attendance.MarkStudentRequest{Status: &absent})
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Present)
	assert.Equal(t, 1, stats.Absent)
}

func TestSubmitDateUsesLocalCalendarDay(t *testing.T) {
	// 01:00 on March 2nd in a zone ahead of UTC; in UTC the clock still
	// reads March 1st.
	ist := time.FixedZone("IST", 5*3600+30*60)
	lateNight := time.Date(2026, 3, 2, 1, 0, 0, 0, ist)

	attRepo := &fakeAttendanceRepo{}
	svc, _ := newSubmitService(attRepo, 2, clock.Fixed{T: lateNight})
	ctx := facultyContext(t, "fac-1")

	view, err := svc.StartSession(ctx, startRequest())
	require.NoError(t, err)
	_, err = svc.BulkMark(ctx, view.SessionID, attendance.BulkMarkRequest{
		Status: attendance.StatusPresent,
		Scope:  attendance.BulkScopeAll,
	})
	require.NoError(t, err)

	resp, err := svc.Submit(ctx, view.SessionID)
	require.NoError(t, err)

	// The persisted records, the duplicate check and the response all carry
	// the same calendar day.
	require.Len(t, attRepo.inserts, 1)
	stored := attRepo.inserts[0][0].Date.Format("2006-01-02")
	assert.Equal(t, "2026-03-02", stored)
	assert.Equal(t, resp.Date, stored)
	assert.Equal(t, []string{"2026-03-02"}, attRepo.hasTakenDates)
}
