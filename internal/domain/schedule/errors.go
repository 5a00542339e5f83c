package schedule

import "errors"

var (
	ErrFacultyNotFound = errors.New("faculty member not found")
	ErrEntryNotFound   = errors.New("no scheduled class matches the request")
)
