package postgresql

import (
	"context"

	"github.com/campuscore/ums-backend-go/internal/domain/academic"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type subjectRepositoryImpl struct {
	db *database.DB
}

func NewSubjectRepository(db *database.DB) academic.SubjectRepository {
	return &subjectRepositoryImpl{db: db}
}

// Create implements academic.SubjectRepository.
func (r *subjectRepositoryImpl) Create(ctx context.Context, s academic.Subject) (academic.Subject, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subjects (name, subject_code, weekly_hours)
		VALUES ($1, $2, $3)
		RETURNING id, name, subject_code, weekly_hours, created_at, updated_at
	`

	var created academic.Subject
	err := q.QueryRow(ctx, query, s.Name, s.SubjectCode, s.WeeklyHours).Scan(
		&created.ID,
		&created.Name,
		&created.SubjectCode,
		&created.WeeklyHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return academic.Subject{}, err
	}

	return created, nil
}

// GetByID implements academic.SubjectRepository.
func (r *subjectRepositoryImpl) GetByID(ctx context.Context, id string) (academic.Subject, error) {
	q := GetQuerier(ctx, r.db)

	var found academic.Subject
	err := q.QueryRow(ctx, `
		SELECT id, name, subject_code, weekly_hours, created_at, updated_at
		FROM subjects
		WHERE id = $1
	`, id).Scan(
		&found.ID,
		&found.Name,
		&found.SubjectCode,
		&found.WeeklyHours,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return academic.Subject{}, err
	}

	return found, nil
}

// List implements academic.SubjectRepository.
func (r *subjectRepositoryImpl) List(ctx context.Context) ([]academic.Subject, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, subject_code, weekly_hours, created_at, updated_at
		FROM subjects
		ORDER BY subject_code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []academic.Subject
	for rows.Next() {
		var s academic.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.SubjectCode, &s.WeeklyHours, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Delete implements academic.SubjectRepository.
func (r *subjectRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type sectionRepositoryImpl struct {
	db *database.DB
}

func NewSectionRepository(db *database.DB) academic.SectionRepository {
	return &sectionRepositoryImpl{db: db}
}

// Create implements academic.SectionRepository.
func (r *sectionRepositoryImpl) Create(ctx context.Context, s academic.Section) (academic.Section, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sections (name, max_strength)
		VALUES ($1, $2)
		RETURNING id, name, max_strength, created_at, updated_at
	`

	var created academic.Section
	err := q.QueryRow(ctx, query, s.Name, s.MaxStrength).Scan(
		&created.ID,
		&created.Name,
		&created.MaxStrength,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return academic.Section{}, err
	}

	return created, nil
}

// GetByID implements academic.SectionRepository.
func (r *sectionRepositoryImpl) GetByID(ctx context.Context, id string) (academic.Section, error) {
	q := GetQuerier(ctx, r.db)

	var found academic.Section
	err := q.QueryRow(ctx, `
		SELECT sec.id, sec.name, sec.max_strength,
			   (SELECT COUNT(*) FROM students st WHERE st.section_id = sec.id),
			   sec.created_at, sec.updated_at
		FROM sections sec
		WHERE sec.id = $1
	`, id).Scan(
		&found.ID,
		&found.Name,
		&found.MaxStrength,
		&found.CurrentStrength,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return academic.Section{}, err
	}

	return found, nil
}

// List implements academic.SectionRepository.
func (r *sectionRepositoryImpl) List(ctx context.Context) ([]academic.Section, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT sec.id, sec.name, sec.max_strength,
			   (SELECT COUNT(*) FROM students st WHERE st.section_id = sec.id),
			   sec.created_at, sec.updated_at
		FROM sections sec
		ORDER BY sec.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []academic.Section
	for rows.Next() {
		var s academic.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.MaxStrength, &s.CurrentStrength, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

// Delete implements academic.SectionRepository.
func (r *sectionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type semesterRepositoryImpl struct {
	db *database.DB
}

func NewSemesterRepository(db *database.DB) academic.SemesterRepository {
	return &semesterRepositoryImpl{db: db}
}

// Create implements academic.SemesterRepository.
func (r *semesterRepositoryImpl) Create(ctx context.Context, s academic.Semester) (academic.Semester, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO semesters (number, current, branch)
		VALUES ($1, $2, $3)
		RETURNING id, number, current, branch, created_at, updated_at
	`

	var created academic.Semester
	err := q.QueryRow(ctx, query, s.Number, s.Current, s.Branch).Scan(
		&created.ID,
		&created.Number,
		&created.Current,
		&created.Branch,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return academic.Semester{}, err
	}

	return created, nil
}

// GetByID implements academic.SemesterRepository.
func (r *semesterRepositoryImpl) GetByID(ctx context.Context, id string) (academic.Semester, error) {
	q := GetQuerier(ctx, r.db)

	var found academic.Semester
	err := q.QueryRow(ctx, `
		SELECT id, number, current, branch, created_at, updated_at
		FROM semesters
		WHERE id = $1
	`, id).Scan(
		&found.ID,
		&found.Number,
		&found.Current,
		&found.Branch,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return academic.Semester{}, err
	}

	return found, nil
}

// List implements academic.SemesterRepository.
func (r *semesterRepositoryImpl) List(ctx context.Context) ([]academic.Semester, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, number, current, branch, created_at, updated_at
		FROM semesters
		ORDER BY branch ASC, number ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var semesters []academic.Semester
	for rows.Next() {
		var s academic.Semester
		if err := rows.Scan(&s.ID, &s.Number, &s.Current, &s.Branch, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		semesters = append(semesters, s)
	}
	return semesters, rows.Err()
}

// Delete implements academic.SemesterRepository.
func (r *semesterRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM semesters WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) academic.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentSelectColumns = `
	a.id, a.faculty_id, a.subject_id, a.section_id, a.semester_id, a.created_at,
	f.name, sub.name, sec.name
`

const assignmentJoins = `
	LEFT JOIN faculty f ON f.id = a.faculty_id
	LEFT JOIN subjects sub ON sub.id = a.subject_id
	LEFT JOIN sections sec ON sec.id = a.section_id
`

// Create implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a academic.SubjectAssignment) (academic.SubjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subject_assignments (faculty_id, subject_id, section_id, semester_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, faculty_id, subject_id, section_id, semester_id, created_at
	`

	var created academic.SubjectAssignment
	err := q.QueryRow(ctx, query, a.FacultyID, a.SubjectID, a.SectionID, a.SemesterID).Scan(
		&created.ID,
		&created.FacultyID,
		&created.SubjectID,
		&created.SectionID,
		&created.SemesterID,
		&created.CreatedAt,
	)
	if err != nil {
		return academic.SubjectAssignment{}, err
	}

	return created, nil
}

// GetByID implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (academic.SubjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentSelectColumns + `
		FROM subject_assignments a
		` + assignmentJoins + `
		WHERE a.id = $1
	`

	var found academic.SubjectAssignment
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.FacultyID,
		&found.SubjectID,
		&found.SectionID,
		&found.SemesterID,
		&found.CreatedAt,
		&found.FacultyName,
		&found.SubjectName,
		&found.SectionName,
	)
	if err != nil {
		return academic.SubjectAssignment{}, err
	}

	return found, nil
}

// ListByFaculty implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByFaculty(ctx context.Context, facultyID string) ([]academic.SubjectAssignment, error) {
	return r.list(ctx, `WHERE a.faculty_id = $1`, facultyID)
}

// ListBySection implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListBySection(ctx context.Context, sectionID, semesterID string) ([]academic.SubjectAssignment, error) {
	return r.list(ctx, `WHERE a.section_id = $1 AND a.semester_id = $2`, sectionID, semesterID)
}

func (r *assignmentRepositoryImpl) list(ctx context.Context, whereClause string, args ...interface{}) ([]academic.SubjectAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentSelectColumns + `
		FROM subject_assignments a
		` + assignmentJoins + `
		` + whereClause + `
		ORDER BY a.created_at ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []academic.SubjectAssignment
	for rows.Next() {
		var a academic.SubjectAssignment
		if err := rows.Scan(
			&a.ID,
			&a.FacultyID,
			&a.SubjectID,
			&a.SectionID,
			&a.SemesterID,
			&a.CreatedAt,
			&a.FacultyName,
			&a.SubjectName,
			&a.SectionName,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

// Exists implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) Exists(ctx context.Context, subjectID, sectionID, semesterID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM subject_assignments
			WHERE subject_id = $1 AND section_id = $2 AND semester_id = $3
		)
	`, subjectID, sectionID, semesterID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Delete implements academic.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM subject_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
