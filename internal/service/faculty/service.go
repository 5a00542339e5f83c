package faculty

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type FacultyServiceImpl struct {
	facultyRepo faculty.FacultyRepository
}

func NewFacultyService(facultyRepo faculty.FacultyRepository) faculty.FacultyService {
	return &FacultyServiceImpl{facultyRepo: facultyRepo}
}

// Create implements faculty.FacultyService.
func (s *FacultyServiceImpl) Create(ctx context.Context, req faculty.CreateFacultyRequest) (faculty.FacultyResponse, error) {
	if err := req.Validate(); err != nil {
		return faculty.FacultyResponse{}, err
	}

	created, err := s.facultyRepo.Create(ctx, faculty.Faculty{
		Name:         req.Name,
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		Department:   req.Department,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return faculty.FacultyResponse{}, faculty.ErrEmployeeCodeExists
		}
		return faculty.FacultyResponse{}, fmt.Errorf("failed to create faculty: %w", err)
	}

	return mapFacultyToResponse(created), nil
}

// Get implements faculty.FacultyService.
func (s *FacultyServiceImpl) Get(ctx context.Context, id string) (faculty.FacultyResponse, error) {
	found, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return faculty.FacultyResponse{}, faculty.ErrFacultyNotFound
		}
		return faculty.FacultyResponse{}, fmt.Errorf("failed to get faculty: %w", err)
	}
	return mapFacultyToResponse(found), nil
}

// Update implements faculty.FacultyService.
func (s *FacultyServiceImpl) Update(ctx context.Context, req faculty.UpdateFacultyRequest) (faculty.FacultyResponse, error) {
	if err := req.Validate(); err != nil {
		return faculty.FacultyResponse{}, err
	}

	existing, err := s.facultyRepo.GetByID(ctx, req.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return faculty.FacultyResponse{}, faculty.ErrFacultyNotFound
		}
		return faculty.FacultyResponse{}, fmt.Errorf("failed to get faculty: %w", err)
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Email != nil {
		existing.Email = *req.Email
	}
	if req.Department != nil {
		existing.Department = *req.Department
	}

	if err := s.facultyRepo.Update(ctx, existing); err != nil {
		return faculty.FacultyResponse{}, fmt.Errorf("failed to update faculty: %w", err)
	}
	return mapFacultyToResponse(existing), nil
}

// Delete implements faculty.FacultyService.
func (s *FacultyServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.facultyRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return faculty.ErrFacultyNotFound
		}
		return fmt.Errorf("failed to delete faculty: %w", err)
	}
	return nil
}

// List implements faculty.FacultyService.
func (s *FacultyServiceImpl) List(ctx context.Context, filter faculty.FacultyFilter) (faculty.ListFacultyResponse, error) {
	if err := filter.Validate(); err != nil {
		return faculty.ListFacultyResponse{}, err
	}

	members, totalCount, err := s.facultyRepo.List(ctx, filter)
	if err != nil {
		return faculty.ListFacultyResponse{}, fmt.Errorf("failed to list faculty: %w", err)
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	response := faculty.ListFacultyResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Faculty:    make([]faculty.FacultyResponse, 0, len(members)),
	}
	for _, f := range members {
		response.Faculty = append(response.Faculty, mapFacultyToResponse(f))
	}
	return response, nil
}

func mapFacultyToResponse(f faculty.Faculty) faculty.FacultyResponse {
	return faculty.FacultyResponse{
		ID:           f.ID,
		Name:         f.Name,
		EmployeeCode: f.EmployeeCode,
		Email:        f.Email,
		Department:   f.Department,
	}
}
