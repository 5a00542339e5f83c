package timetable

import (
	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

type CreateEntryRequest struct {
	AssignmentID string `json:"assignment_id"`
	Day          string `json:"day"`
	Period       int    `json:"period"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Shift        string `json:"shift"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}
	if !validator.IsInSlice(r.Day, Days) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be MONDAY through SATURDAY",
		})
	}
	if r.Period < 1 || r.Period > 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be between 1 and 8",
		})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}
	if validator.IsValidClockTime(r.StartTime) && validator.IsValidClockTime(r.EndTime) {
		start, _ := validator.ParseClockTime(r.StartTime)
		end, _ := validator.ParseClockTime(r.EndTime)
		if end.MinutesSinceMidnight() <= start.MinutesSinceMidnight() {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be after start_time",
			})
		}
	}
	if !validator.IsInSlice(r.Shift, []string{"MORNING", "AFTERNOON"}) {
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

type EntryResponse struct {
	ID           string  `json:"id"`
	AssignmentID string  `json:"assignment_id"`
	Day          string  `json:"day"`
	Period       int     `json:"period"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Shift        string  `json:"shift"`
	SubjectName  *string `json:"subject_name,omitempty"`
	SectionName  *string `json:"section_name,omitempty"`
	FacultyName  *string `json:"faculty_name,omitempty"`
}

// WeekResponse groups a section's entries by day for display.
type WeekResponse struct {
	SectionID  string                     `json:"section_id"`
	SemesterID string                     `json:"semester_id"`
	Days       map[string][]EntryResponse `json:"days"`
}
