package attendance

import "errors"

var (
	// Marking session errors
	ErrSessionNotFound      = errors.New("marking session not found or expired")
	ErrStudentNotInRoster   = errors.New("student is not part of this roster")
	ErrInvalidStatus        = errors.New("invalid attendance status")
	ErrIncompleteRoster     = errors.New("every student must have an attendance status before submitting")
	ErrSubmissionInProgress = errors.New("a submission for this session is already in progress")
	ErrSessionClosed        = errors.New("marking session has already been submitted")

	// Class errors
	ErrAttendanceAlreadyTaken = errors.New("attendance has already been taken for this class today")
	ErrNotScheduledToday      = errors.New("this class is not on today's schedule")
	ErrEmptyRoster            = errors.New("no students are enrolled in this section")

	// General errors
	ErrRecordNotFound = errors.New("attendance record not found")
)
