package attendance

import "context"

// AttendanceService drives the roster marking workflow and record queries.
type AttendanceService interface {
	// StartSession loads the roster for one of today's classes and opens a
	// marking session. Starting a second session for the same class replaces
	// the first; the stale session is discarded.
	StartSession(ctx context.Context, req StartSessionRequest) (SessionView, error)

	// GetSession renders one page of the session roster for a search term
	// and page index.
	GetSession(ctx context.Context, sessionID, search string, page int) (SessionView, error)

	// MarkStudent applies a point status/remarks update to one roster row.
	MarkStudent(ctx context.Context, sessionID, studentID string, req MarkStudentRequest) (StatsResponse, error)

	// BulkMark applies mark-all or mark-page to the session roster.
	BulkMark(ctx context.Context, sessionID string, req BulkMarkRequest) (StatsResponse, error)

	// Submit validates the completeness precondition, persists the full
	// roster atomically and closes the session. On failure the session
	// returns to editing with all marks preserved.
	Submit(ctx context.Context, sessionID string) (SubmitResponse, error)

	// CancelSession discards the session and all in-memory edits.
	CancelSession(ctx context.Context, sessionID string) error

	// GetMyAttendance retrieves the authenticated student's own records.
	GetMyAttendance(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// GetClassRecords retrieves the submitted records of one class session.
	GetClassRecords(ctx context.Context, req StartSessionRequest, date string) ([]RecordResponse, error)
}
