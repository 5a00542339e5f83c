package student

import "context"

type StudentRepository interface {
	Create(ctx context.Context, s Student) (Student, error)
	GetByID(ctx context.Context, id string) (Student, error)
	GetByUserID(ctx context.Context, userID string) (Student, error)
	Update(ctx context.Context, s Student) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter StudentFilter) ([]Student, int64, error)

	// GetBySection returns the roster of a section+semester ordered by roll
	// number. The marking session snapshots this list.
	GetBySection(ctx context.Context, sectionID, semesterID string) ([]Student, error)

	Count(ctx context.Context) (int64, error)
}
