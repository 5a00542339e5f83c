package exam

import "time"

type ExamType string

const (
	TypeInternal  ExamType = "INTERNAL"
	TypeMidterm   ExamType = "MIDTERM"
	TypeEndterm   ExamType = "ENDTERM"
	TypePractical ExamType = "PRACTICAL"
)

func (t ExamType) Valid() bool {
	switch t {
	case TypeInternal, TypeMidterm, TypeEndterm, TypePractical:
		return true
	}
	return false
}

// Exam is a scheduled assessment for a subject within a section+semester.
type Exam struct {
	ID         string
	Name       string
	Type       ExamType
	SubjectID  string
	SectionID  string
	SemesterID string
	Date       string
	MaxMarks   int
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	SubjectName *string
	SectionName *string
}

// Mark is one student's score for an exam.
type Mark struct {
	ID        string
	ExamID    string
	StudentID string
	Obtained  float64
	EnteredBy string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	StudentName *string
	RollNo      *string
	ExamName    *string
	ExamType    *ExamType
	SubjectName *string
	ExamDate    *string
	MaxMarks    *int
}
