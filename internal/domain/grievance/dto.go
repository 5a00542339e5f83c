package grievance

import (
	"io"

	"github.com/campuscore/ums-backend-go/internal/pkg/validator"
)

type CreateGrievanceRequest struct {
	Subject     string   `json:"subject"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
}

func (r *CreateGrievanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "subject",
			Message: "subject is required",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if !r.Category.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of ACADEMIC, ADMINISTRATIVE, HOSTEL, OTHER",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Attachment carries an uploaded file stream alongside a create request.
type Attachment struct {
	FileName string
	Size     int64
	Reader   io.Reader
}

type UpdateStatusRequest struct {
	Status     Status  `json:"status"`
	Resolution *string `json:"resolution"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PENDING, IN_PROGRESS, RESOLVED, REJECTED",
		})
	}
	if (r.Status == StatusResolved || r.Status == StatusRejected) &&
		(r.Resolution == nil || validator.IsEmpty(*r.Resolution)) {
		errs = append(errs, validator.ValidationError{
			Field:   "resolution",
			Message: "resolution is required when closing a grievance",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GrievanceResponse struct {
	ID            string   `json:"id"`
	Subject       string   `json:"subject"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	Status        Status   `json:"status"`
	Resolution    *string  `json:"resolution,omitempty"`
	AttachmentURL *string  `json:"attachment_url,omitempty"`
	RaisedByName  *string  `json:"raised_by_name,omitempty"`
	RaisedByRole  *string  `json:"raised_by_role,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

type GrievanceFilter struct {
	Status   string
	Category string
	Page     int
	Limit    int
}

func (f *GrievanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != "" && !Status(f.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "invalid status filter",
		})
	}
	if f.Category != "" && !Category(f.Category).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "invalid category filter",
		})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListGrievancesResponse struct {
	Grievances []GrievanceResponse `json:"grievances"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}
