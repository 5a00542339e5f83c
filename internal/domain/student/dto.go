package student

import (
	"strings"

	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

type CreateStudentRequest struct {
	Name       string `json:"name"`
	RollNo     string `json:"roll_no"`
	Email      string `json:"email"`
	SectionID  string `json:"section_id"`
	SemesterID string `json:"semester_id"`
}

func (r *CreateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	r.RollNo = strings.ToUpper(strings.TrimSpace(r.RollNo))
	if !validator.IsValidRollNo(r.RollNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "roll_no",
			Message: "roll_no must be 4-20 characters of letters, digits, / or -",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.SectionID) {
		errs = append(errs, validator.ValidationError{
			Field:   "section_id",
			Message: "section_id is required",
		})
	}
	if validator.IsEmpty(r.SemesterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "semester_id",
			Message: "semester_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStudentRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	SectionID  *string `json:"section_id,omitempty"`
	SemesterID *string `json:"semester_id,omitempty"`
}

func (r *UpdateStudentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StudentResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	RollNo       string  `json:"roll_no"`
	Email        string  `json:"email"`
	SectionID    string  `json:"section_id"`
	SectionName  *string `json:"section_name,omitempty"`
	SemesterID   string  `json:"semester_id"`
	SemesterName *string `json:"semester_name,omitempty"`
}

type StudentFilter struct {
	Search     *string
	SectionID  *string
	SemesterID *string

	Page  int
	Limit int
}

func (f *StudentFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	return nil
}

type ListStudentsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
	Students   []StudentResponse `json:"students"`
}
