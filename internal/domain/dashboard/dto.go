package dashboard

// AdminDashboardResponse aggregates the headline counters on the admin
// landing page.
type AdminDashboardResponse struct {
	TotalStudents      int `json:"total_students"`
	TotalFaculty       int `json:"total_faculty"`
	PendingGrievances  int `json:"pending_grievances"`
	ActiveNotices      int `json:"active_notices"`
	UpcomingExams      int `json:"upcoming_exams"`
	SessionsTakenToday int `json:"sessions_taken_today"`
}

// FacultyDashboardResponse summarizes a faculty member's day.
type FacultyDashboardResponse struct {
	ClassesToday     int `json:"classes_today"`
	AttendanceTaken  int `json:"attendance_taken"`
	PendingSessions  int `json:"pending_sessions"`
	AssignedSubjects int `json:"assigned_subjects"`
}

// StudentDashboardResponse summarizes a student's standing.
type StudentDashboardResponse struct {
	AttendancePercent float64 `json:"attendance_percent"`
	TotalClasses      int     `json:"total_classes"`
	ClassesAttended   int     `json:"classes_attended"`
	UnreadNotices     int     `json:"unread_notices"`
}
