package academic

import "context"

// AcademicService manages the master data behind timetables and rosters:
// subjects, sections, semesters and subject assignments.
type AcademicService interface {
	CreateSubject(ctx context.Context, req CreateSubjectRequest) (SubjectResponse, error)
	ListSubjects(ctx context.Context) ([]SubjectResponse, error)
	DeleteSubject(ctx context.Context, id string) error

	CreateSection(ctx context.Context, req CreateSectionRequest) (SectionResponse, error)
	ListSections(ctx context.Context) ([]SectionResponse, error)
	DeleteSection(ctx context.Context, id string) error

	CreateSemester(ctx context.Context, req CreateSemesterRequest) (SemesterResponse, error)
	ListSemesters(ctx context.Context) ([]SemesterResponse, error)
	DeleteSemester(ctx context.Context, id string) error

	AssignSubject(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	ListFacultyAssignments(ctx context.Context, facultyID string) ([]AssignmentResponse, error)
	DeleteAssignment(ctx context.Context, id string) error
}
