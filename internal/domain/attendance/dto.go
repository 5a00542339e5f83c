package attendance

import (
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

// ========================================
// MARKING SESSION DTOs
// ========================================

// StartSessionRequest identifies the schedule entry a faculty member wants
// to take attendance for. The entry must be on the faculty's schedule for
// today; the roster is loaded server-side.
type StartSessionRequest struct {
	SectionID  string         `json:"section_id"`
	SubjectID  string         `json:"subject_id"`
	SemesterID string         `json:"semester_id"`
	Period     int            `json:"period"`
	Shift      schedule.Shift `json:"shift"`
}

func (r *StartSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "section_id",
			Message: "section_id is required",
		})
	}
	if validator.IsEmpty(r.SubjectID) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject_id",
			Message: "subject_id is required",
		})
	}
	if validator.IsEmpty(r.SemesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "semester_id",
			Message: "semester_id is required",
		})
	}
	if r.Period < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be a positive number",
		})
	}
	if r.Shift != schedule.ShiftMorning && r.Shift != schedule.ShiftAfternoon {
		errs = append(errs, validator.ValidationError{
			Field:   "shift",
			Message: "shift must be MORNING or AFTERNOON",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MarkStudentRequest is a point update for one roster row.
type MarkStudentRequest struct {
	Status  *Status `json:"status,omitempty"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *MarkStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == nil && r.Remarks == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "either status or remarks must be provided",
		})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, LATE, EXCUSED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkRequest drives the mark-all and mark-page bulk actions. Scope
// "all" touches the whole roster; scope "page" touches only the ids on the
// given page of the filtered view.
type BulkMarkRequest struct {
	Status Status `json:"status"`
	Scope  string `json:"scope"`
	Search string `json:"search"`
	Page   int    `json:"page"`
}

const (
	BulkScopeAll  = "all"
	BulkScopePage = "page"
)

func (r *BulkMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, LATE, EXCUSED",
		})
	}
	if r.Scope != BulkScopeAll && r.Scope != BulkScopePage {
		errs = append(errs, validator.ValidationError{
			Field:   "scope",
			Message: "scope must be all or page",
		})
	}
	if r.Scope == BulkScopePage && r.Page < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PageMeta describes the filtered, paginated roster view.
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalRows  int `json:"total_rows"`
	TotalPages int `json:"total_pages"`
}

type RosterRowResponse struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	RollNo    string `json:"roll_no"`
	Status    Status `json:"status,omitempty"`
	Remarks   string `json:"remarks,omitempty"`
}

type StatsResponse struct {
	Present        int     `json:"present"`
	Absent         int     `json:"absent"`
	Late           int     `json:"late"`
	Excused        int     `json:"excused"`
	Unmarked       int     `json:"unmarked"`
	Total          int     `json:"total"`
	PresentPercent float64 `json:"present_percent"`
	AbsentPercent  float64 `json:"absent_percent"`
	LatePercent    float64 `json:"late_percent"`
	ExcusedPercent float64 `json:"excused_percent"`
}

// SessionView is what the marking form renders: one page of the roster plus
// the whole-roster statistics.
type SessionView struct {
	SessionID string                 `json:"session_id"`
	State     SessionState           `json:"state"`
	Entry     schedule.EntryResponse `json:"entry"`
	Rows      []RosterRowResponse    `json:"rows"`
	Meta      PageMeta               `json:"meta"`
	Stats     StatsResponse          `json:"stats"`
}

// ========================================
// SUBMISSION DTOs
// ========================================

// StudentAttendance is one submitted roster row.
type StudentAttendance struct {
	StudentID string `json:"student_id"`
	Status    Status `json:"status"`
	Remarks   string `json:"remarks"`
}

// SubmitRequest is the payload persisted by a session submission. It is
// assembled server-side from the full roster; clients never send it.
type SubmitRequest struct {
	SectionID         string              `json:"section_id"`
	SubjectID         string              `json:"subject_id"`
	SemesterID        string              `json:"semester_id"`
	Date              string              `json:"date"`
	Period            int                 `json:"period"`
	Shift             schedule.Shift      `json:"shift"`
	StudentAttendance []StudentAttendance `json:"student_attendance"`
}

// SubmitResponse reports a successful submission.
type SubmitResponse struct {
	SessionID    string `json:"session_id"`
	Date         string `json:"date"`
	RecordsSaved int    `json:"records_saved"`
}

// ========================================
// RECORD QUERY DTOs
// ========================================

type RecordResponse struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	RollNo      *string `json:"roll_no,omitempty"`
	SubjectID   string  `json:"subject_id"`
	SubjectName *string `json:"subject_name,omitempty"`
	Date        string  `json:"date"`
	Period      int     `json:"period"`
	Shift       string  `json:"shift"`
	Status      Status  `json:"status"`
	Remarks     string  `json:"remarks,omitempty"`
}

type RecordFilter struct {
	StudentID *string
	SubjectID *string
	StartDate *string
	EndDate   *string
	Status    *Status

	Page  int
	Limit int
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.Status != nil && !f.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, ABSENT, LATE, EXCUSED",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}
