package faculty

import "errors"

var (
	ErrFacultyNotFound    = errors.New("faculty member not found")
	ErrEmployeeCodeExists = errors.New("employee code already registered")
)
