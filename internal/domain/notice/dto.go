package notice

import "github.com/campuscore/ums-backend-go/internal/pkg/validator"

type CreateNoticeRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Audience Audience `json:"audience"`
	Pinned   bool     `json:"pinned"`
}

func (r *CreateNoticeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}
	if !r.Audience.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "audience",
			Message: "audience must be one of ALL, FACULTY, STUDENT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type NoticeResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Audience     Audience `json:"audience"`
	Pinned       bool     `json:"pinned"`
	PostedByName *string  `json:"posted_by_name,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

type NoticeFilter struct {
	Page  int
	Limit int
}

func (f *NoticeFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

type ListNoticesResponse struct {
	Notices    []NoticeResponse `json:"notices"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
