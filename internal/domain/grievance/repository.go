package grievance

import "context"

type GrievanceRepository interface {
	Create(ctx context.Context, g Grievance) (Grievance, error)
	GetByID(ctx context.Context, id string) (Grievance, error)
	ListByUser(ctx context.Context, userID string, filter GrievanceFilter) ([]Grievance, int, error)
	ListAll(ctx context.Context, filter GrievanceFilter) ([]Grievance, int, error)
	UpdateStatus(ctx context.Context, id string, status Status, resolution *string) (Grievance, error)
	CountByStatus(ctx context.Context, status Status) (int, error)
}
