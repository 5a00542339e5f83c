package exam

import "context"

type ExamRepository interface {
	Create(ctx context.Context, e Exam) (Exam, error)
	GetByID(ctx context.Context, id string) (Exam, error)
	ListBySection(ctx context.Context, sectionID, semesterID string) ([]Exam, error)
	Delete(ctx context.Context, id string) error
	CountUpcoming(ctx context.Context, fromDate string) (int, error)
}

type MarkRepository interface {
	// BulkUpsert inserts or replaces scores keyed by (exam_id, student_id).
	BulkUpsert(ctx context.Context, marks []Mark) error
	ListByExam(ctx context.Context, examID string) ([]Mark, error)
	ListByStudent(ctx context.Context, studentID string) ([]Mark, error)
}
