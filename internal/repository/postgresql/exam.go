package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/exam"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type examRepositoryImpl struct {
	db *database.DB
}

func NewExamRepository(db *database.DB) exam.ExamRepository {
	return &examRepositoryImpl{db: db}
}

// Create implements exam.ExamRepository.
func (r *examRepositoryImpl) Create(ctx context.Context, e exam.Exam) (exam.Exam, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exams (name, type, subject_id, section_id, semester_id, date, max_marks)
		VALUES ($1, $2, $3, $4, $5, $6::date, $7)
		RETURNING id, name, type, subject_id, section_id, semester_id,
				  to_char(date, 'YYYY-MM-DD'), max_marks, created_at, updated_at
	`

	var created exam.Exam
	err := q.QueryRow(ctx, query,
		e.Name,
		e.Type,
		e.SubjectID,
		e.SectionID,
		e.SemesterID,
		e.Date,
		e.MaxMarks,
	).Scan(
		&created.ID,
		&created.Name,
		&created.Type,
		&created.SubjectID,
		&created.SectionID,
		&created.SemesterID,
		&created.Date,
		&created.MaxMarks,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return exam.Exam{}, err
	}

	return created, nil
}

// GetByID implements exam.ExamRepository.
func (r *examRepositoryImpl) GetByID(ctx context.Context, id string) (exam.Exam, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.type, e.subject_id, e.section_id, e.semester_id,
			   to_char(e.date, 'YYYY-MM-DD'), e.max_marks, e.created_at, e.updated_at,
			   sub.name, sec.name
		FROM exams e
		LEFT JOIN subjects sub ON sub.id = e.subject_id
		LEFT JOIN sections sec ON sec.id = e.section_id
		WHERE e.id = $1
	`

	var found exam.Exam
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Type,
		&found.SubjectID,
		&found.SectionID,
		&found.SemesterID,
		&found.Date,
		&found.MaxMarks,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.SubjectName,
		&found.SectionName,
	)
	if err != nil {
		return exam.Exam{}, err
	}

	return found, nil
}

// ListBySection implements exam.ExamRepository.
func (r *examRepositoryImpl) ListBySection(ctx context.Context, sectionID, semesterID string) ([]exam.Exam, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.type, e.subject_id, e.section_id, e.semester_id,
			   to_char(e.date, 'YYYY-MM-DD'), e.max_marks, e.created_at, e.updated_at,
			   sub.name, sec.name
		FROM exams e
		LEFT JOIN subjects sub ON sub.id = e.subject_id
		LEFT JOIN sections sec ON sec.id = e.section_id
		WHERE e.section_id = $1 AND e.semester_id = $2
		ORDER BY e.date ASC
	`

	rows, err := q.Query(ctx, query, sectionID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []exam.Exam
	for rows.Next() {
		var e exam.Exam
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Type,
			&e.SubjectID,
			&e.SectionID,
			&e.SemesterID,
			&e.Date,
			&e.MaxMarks,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.SubjectName,
			&e.SectionName,
		); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Delete implements exam.ExamRepository.
func (r *examRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM exams WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CountUpcoming implements exam.ExamRepository.
func (r *examRepositoryImpl) CountUpcoming(ctx context.Context, fromDate string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM exams WHERE date >= $1::date`, fromDate).Scan(&total)
	return total, err
}

type markRepositoryImpl struct {
	db *database.DB
}

func NewMarkRepository(db *database.DB) exam.MarkRepository {
	return &markRepositoryImpl{db: db}
}

// BulkUpsert implements exam.MarkRepository.
func (r *markRepositoryImpl) BulkUpsert(ctx context.Context, marks []exam.Mark) error {
	if len(marks) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(marks))
	valueArgs := make([]interface{}, 0, len(marks)*4)

	for i, m := range marks {
		base := i * 4
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4,
		))
		valueArgs = append(valueArgs, m.ExamID, m.StudentID, m.Obtained, m.EnteredBy)
	}

	query := fmt.Sprintf(`
		INSERT INTO exam_marks (exam_id, student_id, obtained, entered_by)
		VALUES %s
		ON CONFLICT (exam_id, student_id)
		DO UPDATE SET obtained = EXCLUDED.obtained, entered_by = EXCLUDED.entered_by, updated_at = NOW()
	`, strings.Join(valueStrings, ", "))

	_, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return fmt.Errorf("failed to bulk upsert marks: %w", err)
	}

	return nil
}

// ListByExam implements exam.MarkRepository.
func (r *markRepositoryImpl) ListByExam(ctx context.Context, examID string) ([]exam.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.exam_id, m.student_id, m.obtained, m.entered_by,
			   m.created_at, m.updated_at, st.name, st.roll_no
		FROM exam_marks m
		LEFT JOIN students st ON st.id = m.student_id
		WHERE m.exam_id = $1
		ORDER BY st.roll_no ASC
	`

	rows, err := q.Query(ctx, query, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []exam.Mark
	for rows.Next() {
		var m exam.Mark
		if err := rows.Scan(
			&m.ID,
			&m.ExamID,
			&m.StudentID,
			&m.Obtained,
			&m.EnteredBy,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.StudentName,
			&m.RollNo,
		); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// ListByStudent implements exam.MarkRepository.
func (r *markRepositoryImpl) ListByStudent(ctx context.Context, studentID string) ([]exam.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.exam_id, m.student_id, m.obtained, m.entered_by,
			   m.created_at, m.updated_at,
			   e.name, e.type, sub.name, to_char(e.date, 'YYYY-MM-DD'), e.max_marks
		FROM exam_marks m
		INNER JOIN exams e ON e.id = m.exam_id
		LEFT JOIN subjects sub ON sub.id = e.subject_id
		WHERE m.student_id = $1
		ORDER BY e.date DESC
	`

	rows, err := q.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []exam.Mark
	for rows.Next() {
		var m exam.Mark
		if err := rows.Scan(
			&m.ID,
			&m.ExamID,
			&m.StudentID,
			&m.Obtained,
			&m.EnteredBy,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.ExamName,
			&m.ExamType,
			&m.SubjectName,
			&m.ExamDate,
			&m.MaxMarks,
		); err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}
