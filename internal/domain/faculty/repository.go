package faculty

import "context"

type FacultyRepository interface {
	Create(ctx context.Context, f Faculty) (Faculty, error)
	GetByID(ctx context.Context, id string) (Faculty, error)
	GetByUserID(ctx context.Context, userID string) (Faculty, error)
	Update(ctx context.Context, f Faculty) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter FacultyFilter) ([]Faculty, int64, error)
	Count(ctx context.Context) (int64, error)
}
