package exam

import "github.com/campuscore/ums-backend-go/internal/pkg/validator"

type CreateExamRequest struct {
	Name       string   `json:"name"`
	Type       ExamType `json:"type"`
	SubjectID  string   `json:"subject_id"`
	SectionID  string   `json:"section_id"`
	SemesterID string   `json:"semester_id"`
	Date       string   `json:"date"`
	MaxMarks   int      `json:"max_marks"`
}

func (r *CreateExamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of INTERNAL, MIDTERM, ENDTERM, PRACTICAL",
		})
	}
	for field, value := range map[string]string{
		"subject_id":  r.SubjectID,
		"section_id":  r.SectionID,
		"semester_id": r.SemesterID,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.MaxMarks < 1 || r.MaxMarks > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_marks",
			Message: "max_marks must be between 1 and 1000",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExamResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        ExamType `json:"type"`
	SubjectID   string   `json:"subject_id"`
	SubjectName *string  `json:"subject_name,omitempty"`
	SectionID   string   `json:"section_id"`
	SectionName *string  `json:"section_name,omitempty"`
	SemesterID  string   `json:"semester_id"`
	Date        string   `json:"date"`
	MaxMarks    int      `json:"max_marks"`
}

type StudentMarkEntry struct {
	StudentID string  `json:"student_id"`
	Obtained  float64 `json:"obtained"`
}

// UploadMarksRequest carries a batch of scores for one exam. Re-uploading
// for a student replaces the earlier score.
type UploadMarksRequest struct {
	Marks []StudentMarkEntry `json:"marks"`
}

func (r *UploadMarksRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Marks) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "marks",
			Message: "marks must not be empty",
		})
	}
	seen := make(map[string]bool, len(r.Marks))
	for i, m := range r.Marks {
		if validator.IsEmpty(m.StudentID) {
			errs = append(errs, validator.ValidationError{
				Field:   "marks",
				Message: "student_id is required for every entry",
			})
			break
		}
		if m.Obtained < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "marks",
				Message: "obtained must not be negative",
			})
			break
		}
		if seen[m.StudentID] {
			errs = append(errs, validator.ValidationError{
				Field:   "marks",
				Message: "duplicate student in upload",
			})
			break
		}
		seen[r.Marks[i].StudentID] = true
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkResponse struct {
	StudentID   string  `json:"student_id"`
	StudentName *string `json:"student_name,omitempty"`
	RollNo      *string `json:"roll_no,omitempty"`
	Obtained    float64 `json:"obtained"`
	MaxMarks    int     `json:"max_marks"`
}

type ExamMarksResponse struct {
	Exam  ExamResponse   `json:"exam"`
	Marks []MarkResponse `json:"marks"`
}

// StudentResultResponse is one exam row on a student's own marks view.
type StudentResultResponse struct {
	ExamID      string   `json:"exam_id"`
	ExamName    string   `json:"exam_name"`
	ExamType    ExamType `json:"exam_type"`
	SubjectName *string  `json:"subject_name,omitempty"`
	Date        string   `json:"date"`
	Obtained    float64  `json:"obtained"`
	MaxMarks    int      `json:"max_marks"`
}
