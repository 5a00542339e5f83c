package academic

import "context"

type SubjectRepository interface {
	Create(ctx context.Context, s Subject) (Subject, error)
	GetByID(ctx context.Context, id string) (Subject, error)
	List(ctx context.Context) ([]Subject, error)
	Delete(ctx context.Context, id string) error
}

type SectionRepository interface {
	Create(ctx context.Context, s Section) (Section, error)
	GetByID(ctx context.Context, id string) (Section, error)
	List(ctx context.Context) ([]Section, error)
	Delete(ctx context.Context, id string) error
}

type SemesterRepository interface {
	Create(ctx context.Context, s Semester) (Semester, error)
	GetByID(ctx context.Context, id string) (Semester, error)
	List(ctx context.Context) ([]Semester, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a SubjectAssignment) (SubjectAssignment, error)
	GetByID(ctx context.Context, id string) (SubjectAssignment, error)
	ListByFaculty(ctx context.Context, facultyID string) ([]SubjectAssignment, error)
	ListBySection(ctx context.Context, sectionID, semesterID string) ([]SubjectAssignment, error)
	Exists(ctx context.Context, subjectID, sectionID, semesterID string) (bool, error)
	Delete(ctx context.Context, id string) error
}
