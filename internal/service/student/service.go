package student

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type StudentServiceImpl struct {
	studentRepo student.StudentRepository
}

func NewStudentService(studentRepo student.StudentRepository) student.StudentService {
	return &StudentServiceImpl{studentRepo: studentRepo}
}

// Create implements student.StudentService.
func (s *StudentServiceImpl) Create(ctx context.Context, req student.CreateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	created, err := s.studentRepo.Create(ctx, student.Student{
		Name:       req.Name,
		RollNo:     req.RollNo,
		Email:      req.Email,
		SectionID:  req.SectionID,
		SemesterID: req.SemesterID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return student.StudentResponse{}, student.ErrRollNoExists
		}
		return student.StudentResponse{}, fmt.Errorf("failed to create student: %w", err)
	}

	return mapStudentToResponse(created), nil
}

// Get implements student.StudentService.
func (s *StudentServiceImpl) Get(ctx context.Context, id string) (student.StudentResponse, error) {
	found, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return student.StudentResponse{}, student.ErrStudentNotFound
		}
		return student.StudentResponse{}, fmt.Errorf("failed to get student: %w", err)
	}
	return mapStudentToResponse(found), nil
}

// Update implements student.StudentService.
func (s *StudentServiceImpl) Update(ctx context.Context, req student.UpdateStudentRequest) (student.StudentResponse, error) {
	if err := req.Validate(); err != nil {
		return student.StudentResponse{}, err
	}

	existing, err := s.studentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return student.StudentResponse{}, student.ErrStudentNotFound
		}
		return student.StudentResponse{}, fmt.Errorf("failed to get student: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.SectionID != nil {
		existing.SectionID = *req.SectionID
	}
	if req.SemesterID != nil {
		existing.SemesterID = *req.SemesterID
	}

	if err := s.studentRepo.Update(ctx, existing); err != nil {
		return student.StudentResponse{}, fmt.Errorf("failed to update student: %w", err)
	}
	return mapStudentToResponse(existing), nil
}

// Delete implements student.StudentService.
func (s *StudentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return student.ErrStudentNotFound
		}
		return fmt.Errorf("failed to delete student: %w", err)
	}
	return nil
}

// List implements student.StudentService.
func (s *StudentServiceImpl) List(ctx context.Context, filter student.StudentFilter) (student.ListStudentsResponse, error) {
	if err := filter.Validate(); err != nil {
		return student.ListStudentsResponse{}, err
	}

	students, totalCount, err := s.studentRepo.List(ctx, filter)
	if err != nil {
		return student.ListStudentsResponse{}, fmt.Errorf("failed to list students: %w", err)
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	response := student.ListStudentsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Students:   make([]student.StudentResponse, 0, len(students)),
	}
	for _, st := range students {
		response.Students = append(response.Students, mapStudentToResponse(st))
	}
	return response, nil
}

// GetBySection implements student.StudentService.
func (s *StudentServiceImpl) GetBySection(ctx context.Context, sectionID, semesterID string) ([]student.StudentResponse, error) {
	students, err := s.studentRepo.GetBySection(ctx, sectionID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get section roster: %w", err)
	}

	responses := make([]student.StudentResponse, 0, len(students))
	for _, st := range students {
		responses = append(responses, mapStudentToResponse(st))
	}
	return responses, nil
}

func mapStudentToResponse(st student.Student) student.StudentResponse {
	return student.StudentResponse{
		ID:           st.ID,
		Name:         st.Name,
		RollNo:       st.RollNo,
		Email:        st.Email,
		SectionID:    st.SectionID,
		SectionName:  st.SectionName,
		SemesterID:   st.SemesterID,
		SemesterName: st.SemesterName,
	}
}
