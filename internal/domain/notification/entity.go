package notification

import "time"

type Kind string

const (
	KindAttendanceSubmitted Kind = "ATTENDANCE_SUBMITTED"
	KindNoticePublished     Kind = "NOTICE_PUBLISHED"
	KindGrievanceUpdated    Kind = "GRIEVANCE_UPDATED"
	KindMarksPublished      Kind = "MARKS_PUBLISHED"
	KindAbsenceRecorded     Kind = "ABSENCE_RECORDED"
)

// Notification is a persisted in-app message for one user. Delivery is
// asynchronous: producers enqueue events, the worker persists them and
// pushes to any live SSE connection.
type Notification struct {
	ID        string
	UserID    string
	Kind      Kind
	Title     string
	Body      string
	Read      bool
	CreatedAt time.Time
}

// Event is the queue payload. One event may fan out to many users.
type Event struct {
	Kind    Kind     `json:"kind"`
	Title   string   `json:"title"`
	Body    string   `json:"body"`
	UserIDs []string `json:"user_ids"`
}
