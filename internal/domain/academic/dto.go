package academic

import "github.com/campuscore/ums-backend-go/internal/pkg/validator"

type CreateSubjectRequest struct {
	Name        string `json:"name"`
	SubjectCode string `json:"subject_code"`
	WeeklyHours int    `json:"weekly_hours"`
}

func (r *CreateSubjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.SubjectCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject_code",
			Message: "subject_code is required",
		})
	}
	if r.WeeklyHours < 1 || r.WeeklyHours > 20 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours",
			Message: "weekly_hours must be between 1 and 20",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SubjectCode string `json:"subject_code"`
	WeeklyHours int    `json:"weekly_hours"`
}

type CreateSectionRequest struct {
	Name        string `json:"name"`
	MaxStrength int    `json:"max_strength"`
}

func (r *CreateSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MaxStrength < 1 || r.MaxStrength > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_strength",
			Message: "max_strength must be between 1 and 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SectionResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	MaxStrength     int    `json:"max_strength"`
	CurrentStrength int    `json:"current_strength"`
}

type CreateSemesterRequest struct {
	Number  int    `json:"number"`
	Current bool   `json:"current"`
	Branch  string `json:"branch"`
}

func (r *CreateSemesterRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Number < 1 || r.Number > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "number",
			Message: "number must be between 1 and 12",
		})
	}
	if validator.IsEmpty(r.Branch) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch",
			Message: "branch is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SemesterResponse struct {
	ID      string `json:"id"`
	Number  int    `json:"number"`
	Current bool   `json:"current"`
	Branch  string `json:"branch"`
}

type CreateAssignmentRequest struct {
	FacultyID  string `json:"faculty_id"`
	SubjectID  string `json:"subject_id"`
	SectionID  string `json:"section_id"`
	SemesterID string `json:"semester_id"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"faculty_id":  r.FacultyID,
		"subject_id":  r.SubjectID,
		"section_id":  r.SectionID,
		"semester_id": r.SemesterID,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID          string  `json:"id"`
	FacultyID   string  `json:"faculty_id"`
	FacultyName *string `json:"faculty_name,omitempty"`
	SubjectID   string  `json:"subject_id"`
	SubjectName *string `json:"subject_name,omitempty"`
	SectionID   string  `json:"section_id"`
	SectionName *string `json:"section_name,omitempty"`
	SemesterID  string  `json:"semester_id"`
}
