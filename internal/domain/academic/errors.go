package academic

import "errors"

var (
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrSubjectCodeExists  = errors.New("subject code already exists")
	ErrSectionNotFound    = errors.New("section not found")
	ErrSemesterNotFound   = errors.New("semester not found")
	ErrAssignmentNotFound = errors.New("subject assignment not found")
	ErrAssignmentExists   = errors.New("this subject is already assigned for the section and semester")
)
