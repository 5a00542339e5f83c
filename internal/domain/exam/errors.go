package exam

import "errors"

var (
	ErrExamNotFound      = errors.New("exam not found")
	ErrMarkNotFound      = errors.New("mark not found")
	ErrMarksExceedMax    = errors.New("obtained marks exceed the exam maximum")
	ErrStudentNotInExam  = errors.New("student does not belong to the exam's section")
	ErrDuplicateStudents = errors.New("duplicate student entries in marks upload")
)
