package grievance

import "context"

// GrievanceService lets students and faculty raise complaints, optionally
// with an attachment, and lets admins work them to resolution.
type GrievanceService interface {
	Create(ctx context.Context, req CreateGrievanceRequest, attachment *Attachment) (GrievanceResponse, error)
	GetMine(ctx context.Context, filter GrievanceFilter) (ListGrievancesResponse, error)
	GetAll(ctx context.Context, filter GrievanceFilter) (ListGrievancesResponse, error)
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (GrievanceResponse, error)
}
