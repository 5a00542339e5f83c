package student

import "context"

type StudentService interface {
	Create(ctx context.Context, req CreateStudentRequest) (StudentResponse, error)
	Get(ctx context.Context, id string) (StudentResponse, error)
	Update(ctx context.Context, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter StudentFilter) (ListStudentsResponse, error)
	GetBySection(ctx context.Context, sectionID, semesterID string) ([]StudentResponse, error)
}
