package faculty

import "context"

type FacultyService interface {
	Create(ctx context.Context, req CreateFacultyRequest) (FacultyResponse, error)
	Get(ctx context.Context, id string) (FacultyResponse, error)
	Update(ctx context.Context, req UpdateFacultyRequest) (FacultyResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter FacultyFilter) (ListFacultyResponse, error)
}
