package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserEmailExists         = errors.New("email already registered")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInvalidPasswordLength   = errors.New("password must be at least 8 characters")
	ErrInvalidOAuthProvider    = errors.New("invalid oauth provider")
	ErrAdminAccessRequired     = errors.New("admin access required")
	ErrFacultyAccessRequired   = errors.New("faculty access required")
	ErrStudentAccessRequired   = errors.New("student access required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
