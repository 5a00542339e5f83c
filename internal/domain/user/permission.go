package user

type Permission string

const (
	// Attendance
	PermissionAttendanceTake    Permission = "attendance.take"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceViewAll Permission = "attendance.view_all"

	// Timetable & assignments
	PermissionTimetableView   Permission = "timetable.view"
	PermissionTimetableManage Permission = "timetable.manage"

	// Grievances
	PermissionGrievanceCreate  Permission = "grievance.create"
	PermissionGrievanceViewOwn Permission = "grievance.view_own"
	PermissionGrievanceManage  Permission = "grievance.manage"

	// Notices
	PermissionNoticeView   Permission = "notice.view"
	PermissionNoticeManage Permission = "notice.manage"

	// Exams & marks
	PermissionExamManage   Permission = "exam.manage"
	PermissionMarksEnter   Permission = "marks.enter"
	PermissionMarksViewOwn Permission = "marks.view_own"

	// Records
	PermissionRecordsManage Permission = "records.manage"

	// Dashboard
	PermissionDashboardView Permission = "dashboard.view"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionTimetableView,
		PermissionTimetableManage,
		PermissionGrievanceManage,
		PermissionNoticeView,
		PermissionNoticeManage,
		PermissionExamManage,
		PermissionRecordsManage,
		PermissionDashboardView,
	},
	RoleFaculty: {
		PermissionAttendanceTake,
		PermissionAttendanceViewAll,
		PermissionTimetableView,
		PermissionGrievanceCreate,
		PermissionGrievanceViewOwn,
		PermissionNoticeView,
		PermissionMarksEnter,
	},
	RoleStudent: {
		PermissionAttendanceViewOwn,
		PermissionTimetableView,
		PermissionGrievanceCreate,
		PermissionGrievanceViewOwn,
		PermissionNoticeView,
		PermissionMarksViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
