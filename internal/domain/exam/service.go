package exam

import "context"

// ExamService schedules exams and records marks. Faculty upload marks for
// exams of subjects they are assigned; students read their own results.
type ExamService interface {
	CreateExam(ctx context.Context, req CreateExamRequest) (ExamResponse, error)
	ListSectionExams(ctx context.Context, sectionID, semesterID string) ([]ExamResponse, error)
	DeleteExam(ctx context.Context, id string) error

	UploadMarks(ctx context.Context, examID string, req UploadMarksRequest) (ExamMarksResponse, error)
	GetExamMarks(ctx context.Context, examID string) (ExamMarksResponse, error)
	GetMyResults(ctx context.Context) ([]StudentResultResponse, error)
}
