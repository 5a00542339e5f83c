package academic

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type AcademicServiceImpl struct {
	subjectRepo    academic.SubjectRepository
	sectionRepo    academic.SectionRepository
	semesterRepo   academic.SemesterRepository
	assignmentRepo academic.AssignmentRepository
}

func NewAcademicService(
	subjectRepo academic.SubjectRepository,
	sectionRepo academic.SectionRepository,
	semesterRepo academic.SemesterRepository,
	assignmentRepo academic.AssignmentRepository,
) academic.AcademicService {
	return &AcademicServiceImpl{
		subjectRepo:    subjectRepo,
		sectionRepo:    sectionRepo,
		semesterRepo:   semesterRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CreateSubject implements academic.AcademicService.
func (s *AcademicServiceImpl) CreateSubject(ctx context.Context, req academic.CreateSubjectRequest) (academic.SubjectResponse, error) {
	if err := req.Validate(); err != nil {
		return academic.SubjectResponse{}, err
	}

	created, err := s.subjectRepo.Create(ctx, academic.Subject{
		Name:        req.Name,
		SubjectCode: req.SubjectCode,
		WeeklyHours: req.WeeklyHours,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return academic.SubjectResponse{}, academic.ErrSubjectCodeExists
		}
		return academic.SubjectResponse{}, fmt.Errorf("failed to create subject: %w", err)
	}

	return mapSubjectToResponse(created), nil
}

// ListSubjects implements academic.AcademicService.
func (s *AcademicServiceImpl) ListSubjects(ctx context.Context) ([]academic.SubjectResponse, error) {
	subjects, err := s.subjectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	responses := make([]academic.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, mapSubjectToResponse(subject))
	}
	return responses, nil
}

// DeleteSubject implements academic.AcademicService.
func (s *AcademicServiceImpl) DeleteSubject(ctx context.Context, id string) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return academic.ErrSubjectNotFound
		}
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	return nil
}

// CreateSection implements academic.AcademicService.
func (s *AcademicServiceImpl) CreateSection(ctx context.Context, req academic.CreateSectionRequest) (academic.SectionResponse, error) {
	if err := req.Validate(); err != nil {
		return academic.SectionResponse{}, err
	}

	created, err := s.sectionRepo.Create(ctx, academic.Section{
		Name:        req.Name,
		MaxStrength: req.MaxStrength,
	})
	if err != nil {
		return academic.SectionResponse{}, fmt.Errorf("failed to create section: %w", err)
	}

	return mapSectionToResponse(created), nil
}

// ListSections implements academic.AcademicService.
func (s *AcademicServiceImpl) ListSections(ctx context.Context) ([]academic.SectionResponse, error) {
	sections, err := s.sectionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	responses := make([]academic.SectionResponse, 0, len(sections))
	for _, section := range sections {
		responses = append(responses, mapSectionToResponse(section))
	}
	return responses, nil
}

// DeleteSection implements academic.AcademicService.
func (s *AcademicServiceImpl) DeleteSection(ctx context.Context, id string) error {
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return academic.ErrSectionNotFound
		}
		return fmt.Errorf("failed to delete section: %w", err)
	}
	return nil
}

// CreateSemester implements academic.AcademicService.
func (s *AcademicServiceImpl) CreateSemester(ctx context.Context, req academic.CreateSemesterRequest) (academic.SemesterResponse, error) {
	if err := req.Validate(); err != nil {
		return academic.SemesterResponse{}, err
	}

	created, err := s.semesterRepo.Create(ctx, academic.Semester{
		Number:  req.Number,
		Current: req.Current,
		Branch:  req.Branch,
	})
	if err != nil {
		return academic.SemesterResponse{}, fmt.Errorf("failed to create semester: %w", err)
	}

	return mapSemesterToResponse(created), nil
}

// ListSemesters implements academic.AcademicService.
func (s *AcademicServiceImpl) ListSemesters(ctx context.Context) ([]academic.SemesterResponse, error) {
	semesters, err := s.semesterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list semesters: %w", err)
	}

	responses := make([]academic.SemesterResponse, 0, len(semesters))
	for _, semester := range semesters {
		responses = append(responses, mapSemesterToResponse(semester))
	}
	return responses, nil
}

// DeleteSemester implements academic.AcademicService.
func (s *AcademicServiceImpl) DeleteSemester(ctx context.Context, id string) error {
	if err := s.semesterRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return academic.ErrSemesterNotFound
		}
		return fmt.Errorf("failed to delete semester: %w", err)
	}
	return nil
}

// AssignSubject implements academic.AcademicService.
func (s *AcademicServiceImpl) AssignSubject(ctx context.Context, req academic.CreateAssignmentRequest) (academic.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return academic.AssignmentResponse{}, err
	}

	exists, err := s.assignmentRepo.Exists(ctx, req.SubjectID, req.SectionID, req.SemesterID)
	if err != nil {
		return academic.AssignmentResponse{}, fmt.Errorf("failed to check assignment: %w", err)
	}
	if exists {
		return academic.AssignmentResponse{}, academic.ErrAssignmentExists
	}

	created, err := s.assignmentRepo.Create(ctx, academic.SubjectAssignment{
		FacultyID:  req.FacultyID,
		SubjectID:  req.SubjectID,
		SectionID:  req.SectionID,
		SemesterID: req.SemesterID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return academic.AssignmentResponse{}, academic.ErrAssignmentExists
		}
		return academic.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// ListFacultyAssignments implements academic.AcademicService.
func (s *AcademicServiceImpl) ListFacultyAssignments(ctx context.Context, facultyID string) ([]academic.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]academic.AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, mapAssignmentToResponse(assignment))
	}
	return responses, nil
}

// DeleteAssignment implements academic.AcademicService.
func (s *AcademicServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return academic.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func mapSubjectToResponse(s academic.Subject) academic.SubjectResponse {
	return academic.SubjectResponse{
		ID:          s.ID,
		Name:        s.Name,
		SubjectCode: s.SubjectCode,
		WeeklyHours: s.WeeklyHours,
	}
}

func mapSectionToResponse(s academic.Section) academic.SectionResponse {
	return academic.SectionResponse{
		ID:              s.ID,
		Name:            s.Name,
		MaxStrength:     s.MaxStrength,
		CurrentStrength: s.CurrentStrength,
	}
}

func mapSemesterToResponse(s academic.Semester) academic.SemesterResponse {
	return academic.SemesterResponse{
		ID:      s.ID,
		Number:  s.Number,
		Current: s.Current,
		Branch:  s.Branch,
	}
}

func mapAssignmentToResponse(a academic.SubjectAssignment) academic.AssignmentResponse {
	return academic.AssignmentResponse{
		ID:          a.ID,
		FacultyID:   a.FacultyID,
		FacultyName: a.FacultyName,
		SubjectID:   a.SubjectID,
		SubjectName: a.SubjectName,
		SectionID:   a.SectionID,
		SectionName: a.SectionName,
		SemesterID:  a.SemesterID,
	}
}
