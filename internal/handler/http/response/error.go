package response

import (
	"errors"
	"net/http"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/auth"
	"github.com/campuscore/ums-backend-go/internal/domain/exam"
	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/campuscore/ums-backend-go/internal/domain/grievance"
	"github.com/campuscore/ums-backend-go/internal/domain/notice"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/domain/timetable"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDisabled):
		Forbidden(w, "Account is disabled")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)

	// Role errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrFacultyAccessRequired),
		errors.Is(err, user.ErrStudentAccessRequired),
		errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())

	// Schedule domain errors
	case errors.Is(err, schedule.ErrFacultyNotFound):
		NotFound(w, "Faculty member not found")
	case errors.Is(err, schedule.ErrEntryNotFound):
		NotFound(w, "No scheduled class matches the request")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Marking session not found or expired")
	case errors.Is(err, attendance.ErrStudentNotInRoster):
		NotFound(w, "Student is not part of this roster")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrIncompleteRoster):
		BadRequest(w, "Every student must have an attendance status before submitting", nil)
	case errors.Is(err, attendance.ErrSubmissionInProgress):
		Conflict(w, "A submission for this session is already in progress")
	case errors.Is(err, attendance.ErrSessionClosed):
		Conflict(w, "Marking session has already been submitted")
	case errors.Is(err, attendance.ErrAttendanceAlreadyTaken):
		Conflict(w, "Attendance has already been taken for this class today")
	case errors.Is(err, attendance.ErrNotScheduledToday):
		BadRequest(w, "This class is not on today's schedule", nil)
	case errors.Is(err, attendance.ErrEmptyRoster):
		BadRequest(w, "No students are enrolled in this section", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Student domain errors
	case errors.Is(err, student.ErrStudentNotFound):
		NotFound(w, "Student not found")
	case errors.Is(err, student.ErrRollNoExists):
		Conflict(w, "Roll number already registered")
	case errors.Is(err, student.ErrSectionFull):
		Conflict(w, "Section is at maximum strength")

	// Faculty domain errors
	case errors.Is(err, faculty.ErrFacultyNotFound):
		NotFound(w, "Faculty member not found")
	case errors.Is(err, faculty.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already registered")

	// Academic domain errors
	case errors.Is(err, academic.ErrSubjectNotFound):
		NotFound(w, "Subject not found")
	case errors.Is(err, academic.ErrSubjectCodeExists):
		Conflict(w, "Subject code already exists")
	case errors.Is(err, academic.ErrSectionNotFound):
		NotFound(w, "Section not found")
	case errors.Is(err, academic.ErrSemesterNotFound):
		NotFound(w, "Semester not found")
	case errors.Is(err, academic.ErrAssignmentNotFound):
		NotFound(w, "Subject assignment not found")
	case errors.Is(err, academic.ErrAssignmentExists):
		Conflict(w, "Subject is already assigned for this section and semester")

	// Timetable domain errors
	case errors.Is(err, timetable.ErrEntryNotFound):
		NotFound(w, "Timetable entry not found")
	case errors.Is(err, timetable.ErrSlotTaken):
		Conflict(w, "Another class already occupies this slot")
	case errors.Is(err, timetable.ErrInvalidDay):
		BadRequest(w, "Invalid timetable day", nil)

	// Grievance domain errors
	case errors.Is(err, grievance.ErrGrievanceNotFound):
		NotFound(w, "Grievance not found")
	case errors.Is(err, grievance.ErrNotOwner):
		Forbidden(w, "Grievance belongs to another user")
	case errors.Is(err, grievance.ErrAlreadyClosed):
		Conflict(w, "Grievance is already resolved or rejected")
	case errors.Is(err, grievance.ErrAttachmentTooBig):
		BadRequest(w, "Attachment exceeds the size limit", nil)

	// Notice domain errors
	case errors.Is(err, notice.ErrNoticeNotFound):
		NotFound(w, "Notice not found")

	// Exam domain errors
	case errors.Is(err, exam.ErrExamNotFound):
		NotFound(w, "Exam not found")
	case errors.Is(err, exam.ErrMarkNotFound):
		NotFound(w, "Mark not found")
	case errors.Is(err, exam.ErrMarksExceedMax):
		BadRequest(w, "Obtained marks exceed the exam maximum", nil)
	case errors.Is(err, exam.ErrStudentNotInExam):
		BadRequest(w, "Student does not belong to the exam's section", nil)
	case errors.Is(err, exam.ErrDuplicateStudents):
		BadRequest(w, "Duplicate student entries in marks upload", nil)

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
