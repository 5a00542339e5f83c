package timetable

import (
	"context"
	"fmt"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/campuscore/ums-backend-go/internal/domain/timetable"
	"github.com/jackc/pgx/v5"
)

type TimetableServiceImpl struct {
	timetableRepo  timetable.TimetableRepository
	assignmentRepo academic.AssignmentRepository
}

func NewTimetableService(timetableRepo timetable.TimetableRepository, assignmentRepo academic.AssignmentRepository) timetable.TimetableService {
	return &TimetableServiceImpl{
		timetableRepo:  timetableRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CreateEntry implements timetable.TimetableService.
func (s *TimetableServiceImpl) CreateEntry(ctx context.Context, req timetable.CreateEntryRequest) (timetable.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timetable.EntryResponse{}, err
	}

	assignment, err := s.assignmentRepo.GetByID(ctx, req.AssignmentID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timetable.EntryResponse{}, academic.ErrAssignmentNotFound
		}
		return timetable.EntryResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	taken, err := s.timetableRepo.SlotTaken(ctx, assignment.SectionID, assignment.SemesterID, req.Day, req.Period)
	if err != nil {
		return timetable.EntryResponse{}, fmt.Errorf("failed to check slot: %w", err)
	}
	if taken {
		return timetable.EntryResponse{}, timetable.ErrSlotTaken
	}

	created, err := s.timetableRepo.Create(ctx, timetable.Entry{
		AssignmentID: req.AssignmentID,
		Day:          req.Day,
		Period:       req.Period,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Shift:        req.Shift,
	})
	if err != nil {
		return timetable.EntryResponse{}, fmt.Errorf("failed to create timetable entry: %w", err)
	}

	return mapEntryToResponse(created), nil
}

// GetSectionWeek implements timetable.TimetableService.
func (s *TimetableServiceImpl) GetSectionWeek(ctx context.Context, sectionID, semesterID string) (timetable.WeekResponse, error) {
	entries, err := s.timetableRepo.ListBySection(ctx, sectionID, semesterID)
	if err != nil {
		return timetable.WeekResponse{}, fmt.Errorf("failed to list timetable entries: %w", err)
	}

	response := timetable.WeekResponse{
		SectionID:  sectionID,
		SemesterID: semesterID,
		Days:       make(map[string][]timetable.EntryResponse, len(timetable.Days)),
	}
	for _, day := range timetable.Days {
		response.Days[day] = []timetable.EntryResponse{}
	}
	for _, entry := range entries {
		response.Days[entry.Day] = append(response.Days[entry.Day], mapEntryToResponse(entry))
	}

	return response, nil
}

// DeleteEntry implements timetable.TimetableService.
func (s *TimetableServiceImpl) DeleteEntry(ctx context.Context, id string) error {
	if err := s.timetableRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return timetable.ErrEntryNotFound
		}
		return fmt.Errorf("failed to delete timetable entry: %w", err)
	}
	return nil
}

func mapEntryToResponse(e timetable.Entry) timetable.EntryResponse {
	return timetable.EntryResponse{
		ID:           e.ID,
		AssignmentID: e.AssignmentID,
		Day:          e.Day,
		Period:       e.Period,
		StartTime:    e.StartTime,
		EndTime:      e.EndTime,
		Shift:        e.Shift,
		SubjectName:  e.SubjectName,
		SectionName:  e.SectionName,
		FacultyName:  e.FacultyName,
	}
}
