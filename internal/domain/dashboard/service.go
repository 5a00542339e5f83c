package dashboard

import "context"

// DashboardService builds the role-specific landing views. Which one a
// caller may fetch is decided by their role claims.
type DashboardService interface {
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
	GetFacultyDashboard(ctx context.Context) (FacultyDashboardResponse, error)
	GetStudentDashboard(ctx context.Context) (StudentDashboardResponse, error)
}
