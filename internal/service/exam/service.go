package exam

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/exam"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type ExamServiceImpl struct {
	examRepo    exam.ExamRepository
	markRepo    exam.MarkRepository
	studentRepo student.StudentRepository
	userRepo    user.UserRepository
	notifier    notification.Publisher
}

func NewExamService(
	examRepo exam.ExamRepository,
	markRepo exam.MarkRepository,
	studentRepo student.StudentRepository,
	userRepo user.UserRepository,
	notifier notification.Publisher,
) exam.ExamService {
	return &ExamServiceImpl{
		examRepo:    examRepo,
		markRepo:    markRepo,
		studentRepo: studentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// CreateExam implements exam.ExamService.
func (s *ExamServiceImpl) CreateExam(ctx context.Context, req exam.CreateExamRequest) (exam.ExamResponse, error) {
	if err := req.Validate(); err != nil {
		return exam.ExamResponse{}, err
	}

	created, err := s.examRepo.Create(ctx, exam.Exam{
		Name:       req.Name,
		Type:       req.Type,
		SubjectID:  req.SubjectID,
		SectionID:  req.SectionID,
		SemesterID: req.SemesterID,
		Date:       req.Date,
		MaxMarks:   req.MaxMarks,
	})
	if err != nil {
		return exam.ExamResponse{}, fmt.Errorf("failed to create exam: %w", err)
	}

	return mapExamToResponse(created), nil
}

// ListSectionExams implements exam.ExamService.
func (s *ExamServiceImpl) ListSectionExams(ctx context.Context, sectionID, semesterID string) ([]exam.ExamResponse, error) {
	exams, err := s.examRepo.ListBySection(ctx, sectionID, semesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}

	responses := make([]exam.ExamResponse, 0, len(exams))
	for _, e := range exams {
		responses = append(responses, mapExamToResponse(e))
	}
	return responses, nil
}

// DeleteExam implements exam.ExamService.
func (s *ExamServiceImpl) DeleteExam(ctx context.Context, id string) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return exam.ErrExamNotFound
		}
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	return nil
}

// UploadMarks implements exam.ExamService. Scores are validated against the
// exam maximum and the section roster, then upserted: re-uploading a
// student's score replaces the earlier one.
func (s *ExamServiceImpl) UploadMarks(ctx context.Context, examID string, req exam.UploadMarksRequest) (exam.ExamMarksResponse, error) {
	if err := req.Validate(); err != nil {
		return exam.ExamMarksResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	facultyID, ok := claims["faculty_id"].(string)
	if !ok || facultyID == "" {
		return exam.ExamMarksResponse{}, user.ErrFacultyAccessRequired
	}

	examData, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return exam.ExamMarksResponse{}, exam.ErrExamNotFound
		}
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to get exam: %w", err)
	}

	roster, err := s.studentRepo.GetBySection(ctx, examData.SectionID, examData.SemesterID)
	if err != nil {
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to load section roster: %w", err)
	}
	inSection := make(map[string]bool, len(roster))
	for _, st := range roster {
		inSection[st.ID] = true
	}

	now := time.Now()
	marks := make([]exam.Mark, 0, len(req.Marks))
	for _, entry := range req.Marks {
		if entry.Obtained > float64(examData.MaxMarks) {
			return exam.ExamMarksResponse{}, exam.ErrMarksExceedMax
		}
		if !inSection[entry.StudentID] {
			return exam.ExamMarksResponse{}, exam.ErrStudentNotInExam
		}
		marks = append(marks, exam.Mark{
			ExamID:    examID,
			StudentID: entry.StudentID,
			Obtained:  entry.Obtained,
			EnteredBy: facultyID,
			UpdatedAt: now,
		})
	}

	if err := s.markRepo.BulkUpsert(ctx, marks); err != nil {
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to save marks: %w", err)
	}

	go s.notifyOnMarksPublished(examData)

	return s.GetExamMarks(ctx, examID)
}

// GetExamMarks implements exam.ExamService.
func (s *ExamServiceImpl) GetExamMarks(ctx context.Context, examID string) (exam.ExamMarksResponse, error) {
	examData, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return exam.ExamMarksResponse{}, exam.ErrExamNotFound
		}
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to get exam: %w", err)
	}

	marks, err := s.markRepo.ListByExam(ctx, examID)
	if err != nil {
		return exam.ExamMarksResponse{}, fmt.Errorf("failed to list marks: %w", err)
	}

	response := exam.ExamMarksResponse{
		Exam:  mapExamToResponse(examData),
		Marks: make([]exam.MarkResponse, 0, len(marks)),
	}
	for _, m := range marks {
		response.Marks = append(response.Marks, exam.MarkResponse{
			StudentID:   m.StudentID,
			StudentName: m.StudentName,
			RollNo:      m.RollNo,
			Obtained:    m.Obtained,
			MaxMarks:    examData.MaxMarks,
		})
	}
	return response, nil
}

// GetMyResults implements exam.ExamService.
func (s *ExamServiceImpl) GetMyResults(ctx context.Context) ([]exam.StudentResultResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	studentID, ok := claims["student_id"].(string)
	if !ok || studentID == "" {
		return nil, user.ErrStudentAccessRequired
	}

	marks, err := s.markRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}

	results := make([]exam.StudentResultResponse, 0, len(marks))
	for _, m := range marks {
		result := exam.StudentResultResponse{
			ExamID:      m.ExamID,
			SubjectName: m.SubjectName,
			Obtained:    m.Obtained,
		}
		if m.ExamName != nil {
			result.ExamName = *m.ExamName
		}
		if m.ExamType != nil {
			result.ExamType = *m.ExamType
		}
		if m.ExamDate != nil {
			result.Date = *m.ExamDate
		}
		if m.MaxMarks != nil {
			result.MaxMarks = *m.MaxMarks
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ExamServiceImpl) notifyOnMarksPublished(examData exam.Exam) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIDs, err := s.userRepo.ListIDsBySection(ctx, examData.SectionID)
	if err != nil || len(userIDs) == 0 {
		return
	}

	_ = s.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindMarksPublished,
		Title:   "Marks Published",
		Body:    fmt.Sprintf("Marks for %s are now available", examData.Name),
		UserIDs: userIDs,
	})
}

func mapExamToResponse(e exam.Exam) exam.ExamResponse {
	return exam.ExamResponse{
		ID:          e.ID,
		Name:        e.Name,
		Type:        e.Type,
		SubjectID:   e.SubjectID,
		SubjectName: e.SubjectName,
		SectionID:   e.SectionID,
		SectionName: e.SectionName,
		SemesterID:  e.SemesterID,
		Date:        e.Date,
		MaxMarks:    e.MaxMarks,
	}
}
