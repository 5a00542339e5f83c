package attendance

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
)

// PageSize is the fixed number of roster rows per page.
const PageSize = 20

// SessionState tracks where a marking session is in its lifecycle.
type SessionState string

const (
	SessionEditing    SessionState = "editing"
	SessionSubmitting SessionState = "submitting"
	SessionSubmitted  SessionState = "submitted"
)

// MarkingSession holds the in-memory roster for one class being marked by
// one faculty member. All edits happen here; nothing is persisted until a
// complete roster is submitted. The session serializes its own access so
// concurrent requests from the same dashboard cannot corrupt the roster.
type MarkingSession struct {
	ID        string
	FacultyID string
	Entry     schedule.Entry
	CreatedAt time.Time

	mu          sync.Mutex
	roster      []*RosterStudent
	state       SessionState
	lastTouched time.Time
}

// NewMarkingSession snapshots the roster for a schedule entry. Every student
// starts unmarked with empty remarks regardless of what the caller passes.
func NewMarkingSession(id, facultyID string, entry schedule.Entry, students []RosterStudent, now time.Time) *MarkingSession {
	roster := make([]*RosterStudent, 0, len(students))
	for _, s := range students {
		roster = append(roster, &RosterStudent{ID: s.ID, Name: s.Name, RollNo: s.RollNo})
	}
	return &MarkingSession{
		ID:          id,
		FacultyID:   facultyID,
		Entry:       entry,
		CreatedAt:   now,
		roster:      roster,
		state:       SessionEditing,
		lastTouched: now,
	}
}

// State returns the current lifecycle state.
func (s *MarkingSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastTouched returns the time of the most recent edit or view.
func (s *MarkingSession) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTouched
}

// RosterSize returns the full roster length, ignoring any filter.
func (s *MarkingSession) RosterSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roster)
}

func (s *MarkingSession) touch(now time.Time) {
	s.lastTouched = now
}

// SetStatus marks exactly one student, leaving every other row untouched.
func (s *MarkingSession) SetStatus(studentID string, status Status, now time.Time) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSubmitted {
		return ErrSessionClosed
	}
	for _, row := range s.roster {
		if row.ID == studentID {
			row.Status = status
			s.touch(now)
			return nil
		}
	}
	return ErrStudentNotInRoster
}

// SetRemarks updates exactly one student's free-text remark.
func (s *MarkingSession) SetRemarks(studentID, remarks string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSubmitted {
		return ErrSessionClosed
	}
	for _, row := range s.roster {
		if row.ID == studentID {
			row.Remarks = remarks
			s.touch(now)
			return nil
		}
	}
	return ErrStudentNotInRoster
}

// MarkAll assigns status to every student in the entire roster, regardless
// of any active search filter or page.
func (s *MarkingSession) MarkAll(status Status, now time.Time) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSubmitted {
		return ErrSessionClosed
	}
	for _, row := range s.roster {
		row.Status = status
	}
	s.touch(now)
	return nil
}

// MarkPage assigns status to exactly the rows on the given page of the
// filtered view; rows outside the page id set are left unchanged. It returns
// how many rows were marked.
func (s *MarkingSession) MarkPage(search string, page int, status Status, now time.Time) (int, error) {
	if !status.Valid() {
		return 0, ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSubmitted {
		return 0, ErrSessionClosed
	}
	marked := 0
	for _, row := range s.pageRowsLocked(search, page) {
		row.Status = status
		marked++
	}
	if marked > 0 {
		s.touch(now)
	}
	return marked, nil
}

// Page returns the rendered slice of the roster for a search term and
// 1-based page index, plus paging metadata over the filtered view.
func (s *MarkingSession) Page(search string, page int) ([]RosterStudent, PageMeta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.filterLocked(search)
	rows := make([]RosterStudent, 0, PageSize)
	for _, row := range pageSlice(filtered, page) {
		rows = append(rows, *row)
	}

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	return rows, PageMeta{
		Page:       page,
		PageSize:   PageSize,
		TotalRows:  len(filtered),
		TotalPages: totalPages,
	}
}

// matchesFilter is the roster search predicate: case-insensitive substring
// match on name or roll number.
func matchesFilter(row *RosterStudent, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(row.Name), needle) ||
		strings.Contains(strings.ToLower(row.RollNo), needle)
}

func (s *MarkingSession) filterLocked(search string) []*RosterStudent {
	filtered := make([]*RosterStudent, 0, len(s.roster))
	for _, row := range s.roster {
		if matchesFilter(row, search) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func (s *MarkingSession) pageRowsLocked(search string, page int) []*RosterStudent {
	return pageSlice(s.filterLocked(search), page)
}

func pageSlice(rows []*RosterStudent, page int) []*RosterStudent {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(rows) {
		return nil
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// Stats are the live counts over the whole roster.
type Stats struct {
	Present  int
	Absent   int
	Late     int
	Excused  int
	Unmarked int
	Total    int
}

// Percent returns count/total as a percentage rounded to one decimal place.
// An empty roster yields 0.0 for every bucket rather than NaN.
func (st Stats) Percent(count int) float64 {
	if st.Total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(st.Total)*1000) / 10
}

// Stats recomputes the counters from the live roster.
func (s *MarkingSession) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{Total: len(s.roster)}
	for _, row := range s.roster {
		switch row.Status {
		case StatusPresent:
			st.Present++
		case StatusAbsent:
			st.Absent++
		case StatusLate:
			st.Late++
		case StatusExcused:
			st.Excused++
		default:
			st.Unmarked++
		}
	}
	return st
}

// BeginSubmit validates the completeness precondition and moves the session
// into the submitting state, rejecting concurrent double-submits. The roster
// is untouched either way.
func (s *MarkingSession) BeginSubmit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case SessionSubmitting:
		return ErrSubmissionInProgress
	case SessionSubmitted:
		return ErrSessionClosed
	}
	for _, row := range s.roster {
		if row.Status == "" {
			return ErrIncompleteRoster
		}
	}
	s.state = SessionSubmitting
	return nil
}

// FailSubmit returns a failed submission to the editing state with every
// edit preserved, so the user can retry without re-marking.
func (s *MarkingSession) FailSubmit(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == SessionSubmitting {
		s.state = SessionEditing
		s.touch(now)
	}
}

// CompleteSubmit closes the session after a successful persistence.
func (s *MarkingSession) CompleteSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = SessionSubmitted
}

// BuildRequest assembles the submission payload from the entire roster in
// roster order. Search and pagination never limit what is submitted. It
// fails if any row is still unmarked.
func (s *MarkingSession) BuildRequest(date string) (SubmitRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := make([]StudentAttendance, 0, len(s.roster))
	for _, row := range s.roster {
		if row.Status == "" {
			return SubmitRequest{}, ErrIncompleteRoster
		}
		rows = append(rows, StudentAttendance{
			StudentID: row.ID,
			Status:    row.Status,
			Remarks:   row.Remarks,
		})
	}

	return SubmitRequest{
		SectionID:         s.Entry.Section.ID,
		SubjectID:         s.Entry.Subject.ID,
		SemesterID:        s.Entry.Semester.ID,
		Date:              date,
		Period:            s.Entry.TimeSlot.Period,
		Shift:             s.Entry.TimeSlot.Shift,
		StudentAttendance: rows,
	}, nil
}
