package attendance

import (
	"fmt"
	"testing"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionNow = time.Date(2026, 3, 2, 10, 5, 0, 0, time.UTC)

func testEntry() schedule.Entry {
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
	}
}

func testRoster(n int) []RosterStudent {
	roster := make([]RosterStudent, 0, n)
	for i := 1; i <= n; i++ {
		roster = append(roster, RosterStudent{
			ID:     fmt.Sprintf("stu-%03d", i),
			Name:   fmt.Sprintf("Student %03d", i),
			RollNo: fmt.Sprintf("21CS%03d", i),
		})
	}
	return roster
}

func newTestSession(n int) *MarkingSession {
	return NewMarkingSession("sess-1", "fac-1", testEntry(), testRoster(n), sessionNow)
}

func TestNewMarkingSessionStartsUnmarked(t *testing.T) {
	// Marks on the input must not leak into the fresh roster
	students := testRoster(3)
	students[0].Status = StatusPresent
	students[1].Remarks = "left over"

	session := NewMarkingSession("sess-1", "fac-1", testEntry(), students, sessionNow)

	assert.Equal(t, SessionEditing, session.State())
	assert.Equal(t, 3, session.RosterSize())

	stats := session.Stats()
	assert.Equal(t, 3, stats.Unmarked)
	assert.Equal(t, 0, stats.Present)

	rows, _ := session.Page("", 1)
	for _, row := range rows {
		assert.Empty(t, row.Status)
		assert.Empty(t, row.Remarks)
	}
}

func TestSetStatus(t *testing.T) {
	session := newTestSession(3)

	require.NoError(t, session.SetStatus("stu-002", StatusLate, sessionNow))

	rows, _ := session.Page("", 1)
	assert.Empty(t, rows[0].Status)
	assert.Equal(t, StatusLate, rows[1].Status)
	assert.Empty(t, rows[2].Status)
}

func TestSetStatusInvalid(t *testing.T) {
	session := newTestSession(3)

	err := session.SetStatus("stu-001", Status("SLEEPING"), sessionNow)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = session.SetStatus("stu-999", StatusPresent, sessionNow)
	assert.ErrorIs(t, err, ErrStudentNotInRoster)
}

func TestSetRemarks(t *testing.T) {
	session := newTestSession(2)

	require.NoError(t, session.SetRemarks("stu-001", "medical leave", sessionNow))

	rows, _ := session.Page("", 1)
	assert.Equal(t, "medical leave", rows[0].Remarks)
	assert.Empty(t, rows[1].Remarks)

	assert.ErrorIs(t, session.SetRemarks("stu-999", "x", sessionNow), ErrStudentNotInRoster)
}

func TestMarkAllIgnoresFilter(t *testing.T) {
	session := newTestSession(45)

	require.NoError(t, session.MarkAll(StatusPresent, sessionNow))

	stats := session.Stats()
	assert.Equal(t, 45, stats.Present)
	assert.Equal(t, 0, stats.Unmarked)
}

func TestMarkPageTouchesOnlyThatPage(t *testing.T) {
	session := newTestSession(45)

	marked, err := session.MarkPage("", 2, StatusPresent, sessionNow)
	require.NoError(t, err)
	assert.Equal(t, PageSize, marked)

	stats := session.Stats()
	assert.Equal(t, PageSize, stats.Present)
	assert.Equal(t, 25, stats.Unmarked)

	// Page 1 untouched
	rows, _ := session.Page("", 1)
	for _, row := range rows {
		assert.Empty(t, row.Status)
	}
}

func TestMarkPageRespectsSearchFilter(t *testing.T) {
	session := newTestSession(45)

	// "stu-01" matches nothing by id search on names; filter on roll no instead
	marked, err := session.MarkPage("21CS00", 1, StatusAbsent, sessionNow)
	require.NoError(t, err)
	assert.Equal(t, 9, marked) // 21CS001 .. 21CS009

	stats := session.Stats()
	assert.Equal(t, 9, stats.Absent)
	assert.Equal(t, 36, stats.Unmarked)
}

func TestPagePagination(t *testing.T) {
	session := newTestSession(45)

	rows, meta := session.Page("", 1)
	assert.Len(t, rows, PageSize)
	assert.Equal(t, 45, meta.TotalRows)
	assert.Equal(t, 3, meta.TotalPages)

	rows, _ = session.Page("", 3)
	assert.Len(t, rows, 5)

	// Past the end renders an empty page, not an error
	rows, meta = session.Page("", 4)
	assert.Empty(t, rows)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPageSearchCaseInsensitive(t *testing.T) {
	session := newTestSession(25)

	rows, meta := session.Page("student 003", 1)
	require.Len(t, rows, 1)
	assert.Equal(t, "stu-003", rows[0].ID)
	assert.Equal(t, 1, meta.TotalRows)

	rows, _ = session.Page("21cs01", 1)
	assert.Len(t, rows, 10) // 21CS010 .. 21CS019
}

func TestStatsPercent(t *testing.T) {
	stats := Stats{Present: 1, Absent: 2, Total: 3}
	assert.InDelta(t, 33.3, stats.Percent(stats.Present), 0.001)
	assert.InDelta(t, 66.7, stats.Percent(stats.Absent), 0.001)

	empty := Stats{}
	assert.Equal(t, 0.0, empty.Percent(0))
}

func TestBeginSubmitIncompleteRoster(t *testing.T) {
	session := newTestSession(3)
	require.NoError(t, session.SetStatus("stu-001", StatusPresent, sessionNow))

	err := session.BeginSubmit()
	assert.ErrorIs(t, err, ErrIncompleteRoster)
	assert.Equal(t, SessionEditing, session.State())
}

func TestSubmitLifecycle(t *testing.T) {
	session := newTestSession(3)
	require.NoError(t, session.MarkAll(StatusPresent, sessionNow))

	require.NoError(t, session.BeginSubmit())
	assert.Equal(t, SessionSubmitting, session.State())

	// Double-submit while in flight is rejected
	assert.ErrorIs(t, session.BeginSubmit(), ErrSubmissionInProgress)

	// Edits during submission are still allowed to fail back cleanly
	session.CompleteSubmit()
	assert.Equal(t, SessionSubmitted, session.State())

	assert.ErrorIs(t, session.BeginSubmit(), ErrSessionClosed)
	assert.ErrorIs(t, session.SetStatus("stu-001", StatusAbsent, sessionNow), ErrSessionClosed)
	assert.ErrorIs(t, session.MarkAll(StatusAbsent, sessionNow), ErrSessionClosed)
}

func TestFailSubmitPreservesEdits(t *testing.T) {
	session := newTestSession(3)
	require.NoError(t, session.MarkAll(StatusPresent, sessionNow))
	require.NoError(t, session.SetRemarks("stu-002", "late bus", sessionNow))

	require.NoError(t, session.BeginSubmit())
	session.FailSubmit(sessionNow.Add(time.Second))

	assert.Equal(t, SessionEditing, session.State())
	stats := session.Stats()
	assert.Equal(t, 3, stats.Present)

	rows, _ := session.Page("", 1)
	assert.Equal(t, "late bus", rows[1].Remarks)

	// Retry succeeds
	require.NoError(t, session.BeginSubmit())
}

func TestBuildRequestFullRoster(t *testing.T) {
	session := newTestSession(45)
	require.NoError(t, session.MarkAll(StatusPresent, sessionNow))
	require.NoError(t, session.SetStatus("stu-044", StatusAbsent, sessionNow))

	req, err := session.BuildRequest("2026-03-02")
	require.NoError(t, err)

	// Search and paging never limit the payload
	assert.Len(t, req.StudentAttendance, 45)
	assert.Equal(t, "sec-1", req.SectionID)
	assert.Equal(t, "sub-1", req.SubjectID)
	assert.Equal(t, "sem-1", req.SemesterID)
	assert.Equal(t, "2026-03-02", req.Date)
	assert.Equal(t, 2, req.Period)
	assert.Equal(t, schedule.ShiftMorning, req.Shift)

	assert.Equal(t, StatusAbsent, req.StudentAttendance[43].Status)
}

func TestBuildRequestIncomplete(t *testing.T) {
	session := newTestSession(2)
	require.NoError(t, session.SetStatus("stu-001", StatusPresent, sessionNow))

	_, err := session.BuildRequest("2026-03-02")
	assert.ErrorIs(t, err, ErrIncompleteRoster)
}
