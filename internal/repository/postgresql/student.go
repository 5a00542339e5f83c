package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type studentRepositoryImpl struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepositoryImpl{db: db}
}

// Create implements student.StudentRepository.
func (r *studentRepositoryImpl) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (name, roll_no, email, section_id, semester_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, roll_no, email, section_id, semester_id, user_id, created_at, updated_at
	`

	var created student.Student
	err := q.QueryRow(ctx, query,
		s.Name,
		s.RollNo,
		s.Email,
		s.SectionID,
		s.SemesterID,
		s.UserID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.RollNo,
		&created.Email,
		&created.SectionID,
		&created.SemesterID,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, err
	}

	return created, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepositoryImpl) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.name, s.roll_no, s.email, s.section_id, s.semester_id, s.user_id,
			   s.created_at, s.updated_at, sec.name, 'Semester ' || sem.number
		FROM students s
		LEFT JOIN sections sec ON sec.id = s.section_id
		LEFT JOIN semesters sem ON sem.id = s.semester_id
		WHERE s.id = $1
	`

	var found student.Student
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.RollNo,
		&found.Email,
		&found.SectionID,
		&found.SemesterID,
		&found.UserID,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.SectionName,
		&found.SemesterName,
	)
	if err != nil {
		return student.Student{}, err
	}

	return found, nil
}

// GetByUserID implements student.StudentRepository.
func (r *studentRepositoryImpl) GetByUserID(ctx context.Context, userID string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, roll_no, email, section_id, semester_id, user_id, created_at, updated_at
		FROM students
		WHERE user_id = $1
	`

	var found student.Student
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID,
		&found.Name,
		&found.RollNo,
		&found.Email,
		&found.SectionID,
		&found.SemesterID,
		&found.UserID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return student.Student{}, err
	}

	return found, nil
}

// Update implements student.StudentRepository.
func (r *studentRepositoryImpl) Update(ctx context.Context, s student.Student) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE students
		SET name = $1, email = $2, section_id = $3, semester_id = $4, updated_at = NOW()
		WHERE id = $5
	`, s.Name, s.Email, s.SectionID, s.SemesterID, s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements student.StudentRepository.
func (r *studentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List implements student.StudentRepository.
func (r *studentRepositoryImpl) List(ctx context.Context, filter student.StudentFilter) ([]student.Student, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(s.name ILIKE $%d OR s.roll_no ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.SectionID != nil && *filter.SectionID != "" {
		conditions = append(conditions, fmt.Sprintf("s.section_id = $%d", argIdx))
		args = append(args, *filter.SectionID)
		argIdx++
	}
	if filter.SemesterID != nil && *filter.SemesterID != "" {
		conditions = append(conditions, fmt.Sprintf("s.semester_id = $%d", argIdx))
		args = append(args, *filter.SemesterID)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM students s WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT s.id, s.name, s.roll_no, s.email, s.section_id, s.semester_id, s.user_id,
			   s.created_at, s.updated_at, sec.name, 'Semester ' || sem.number
		FROM students s
		LEFT JOIN sections sec ON sec.id = s.section_id
		LEFT JOIN semesters sem ON sem.id = s.semester_id
		WHERE %s
		ORDER BY s.roll_no ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		var s student.Student
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.RollNo,
			&s.Email,
			&s.SectionID,
			&s.SemesterID,
			&s.UserID,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.SectionName,
			&s.SemesterName,
		); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return students, total, nil
}

// GetBySection implements student.StudentRepository.
func (r *studentRepositoryImpl) GetBySection(ctx context.Context, sectionID, semesterID string) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, roll_no, email, section_id, semester_id, user_id, created_at, updated_at
		FROM students
		WHERE section_id = $1 AND semester_id = $2
		ORDER BY roll_no ASC
	`

	rows, err := q.Query(ctx, query, sectionID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		var s student.Student
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.RollNo,
			&s.Email,
			&s.SectionID,
			&s.SemesterID,
			&s.UserID,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Count implements student.StudentRepository.
func (r *studentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total)
	return total, err
}
