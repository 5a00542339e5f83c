package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/dashboard"
	"github.com/campuscore/ums-backend-go/internal/domain/exam"
	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/campuscore/ums-backend-go/internal/domain/grievance"
	"github.com/campuscore/ums-backend-go/internal/domain/notice"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type DashboardServiceImpl struct {
	studentRepo      student.StudentRepository
	facultyRepo      faculty.FacultyRepository
	grievanceRepo    grievance.GrievanceRepository
	noticeRepo       notice.NoticeRepository
	examRepo         exam.ExamRepository
	attendanceRepo   attendance.AttendanceRepository
	scheduleRepo     schedule.ScheduleRepository
	assignmentRepo   academic.AssignmentRepository
	notificationRepo notification.NotificationRepository
	clock            clock.Clock
}

func NewDashboardService(
	studentRepo student.StudentRepository,
	facultyRepo faculty.FacultyRepository,
	grievanceRepo grievance.GrievanceRepository,
	noticeRepo notice.NoticeRepository,
	examRepo exam.ExamRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.ScheduleRepository,
	assignmentRepo academic.AssignmentRepository,
	notificationRepo notification.NotificationRepository,
	clk clock.Clock,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		studentRepo:      studentRepo,
		facultyRepo:      facultyRepo,
		grievanceRepo:    grievanceRepo,
		noticeRepo:       noticeRepo,
		examRepo:         examRepo,
		attendanceRepo:   attendanceRepo,
		scheduleRepo:     scheduleRepo,
		assignmentRepo:   assignmentRepo,
		notificationRepo: notificationRepo,
		clock:            clk,
	}
}

// GetAdminDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	today := s.clock.Now().Format("2006-01-02")

	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count students: %w", err)
	}
	totalFaculty, err := s.facultyRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count faculty: %w", err)
	}
	pendingGrievances, err := s.grievanceRepo.CountByStatus(ctx, grievance.StatusPending)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count pending grievances: %w", err)
	}
	activeNotices, err := s.noticeRepo.Count(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count notices: %w", err)
	}
	upcomingExams, err := s.examRepo.CountUpcoming(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count upcoming exams: %w", err)
	}
	sessionsToday, err := s.attendanceRepo.CountSessionsOnDate(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count today's sessions: %w", err)
	}

	return dashboard.AdminDashboardResponse{
		TotalStudents:      int(totalStudents),
		TotalFaculty:       int(totalFaculty),
		PendingGrievances:  pendingGrievances,
		ActiveNotices:      activeNotices,
		UpcomingExams:      upcomingExams,
		SessionsTakenToday: int(sessionsToday),
	}, nil
}

// GetFacultyDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetFacultyDashboard(ctx context.Context) (dashboard.FacultyDashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.FacultyDashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	facultyID, ok := claims["faculty_id"].(string)
	if !ok || facultyID == "" {
		return dashboard.FacultyDashboardResponse{}, user.ErrFacultyAccessRequired
	}

	now := s.clock.Now()
	entries, err := s.scheduleRepo.GetFacultyDaySchedule(ctx, facultyID, schedule.Weekday(now), now.Format("2006-01-02"))
	if err != nil {
		return dashboard.FacultyDashboardResponse{}, fmt.Errorf("failed to get today's schedule: %w", err)
	}

	taken := 0
	for _, entry := range entries {
		if entry.AttendanceTaken {
			taken++
		}
	}

	assignments, err := s.assignmentRepo.ListByFaculty(ctx, facultyID)
	if err != nil {
		return dashboard.FacultyDashboardResponse{}, fmt.Errorf("failed to list subject assignments: %w", err)
	}

	return dashboard.FacultyDashboardResponse{
		ClassesToday:     len(entries),
		AttendanceTaken:  taken,
		PendingSessions:  len(entries) - taken,
		AssignedSubjects: len(assignments),
	}, nil
}

// GetStudentDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStudentDashboard(ctx context.Context) (dashboard.StudentDashboardResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return dashboard.StudentDashboardResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	studentID, ok := claims["student_id"].(string)
	if !ok || studentID == "" {
		return dashboard.StudentDashboardResponse{}, user.ErrStudentAccessRequired
	}
	userID, _ := claims["user_id"].(string)

	total, attended, err := s.attendanceRepo.CountByStudent(ctx, studentID)
	if err != nil {
		return dashboard.StudentDashboardResponse{}, fmt.Errorf("failed to count attendance records: %w", err)
	}

	var percent float64
	if total > 0 {
		percent = math.Round(float64(attended)/float64(total)*1000) / 10
	}

	unread := 0
	if userID != "" {
		unread, err = s.notificationRepo.CountUnread(ctx, userID)
		if err != nil {
			return dashboard.StudentDashboardResponse{}, fmt.Errorf("failed to count unread notifications: %w", err)
		}
	}

	return dashboard.StudentDashboardResponse{
		AttendancePercent: percent,
		TotalClasses:      int(total),
		ClassesAttended:   int(attended),
		UnreadNotices:     unread,
	}, nil
}
