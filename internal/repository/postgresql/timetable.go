package postgresql

import (
	"context"

	"github.com/campuscore/ums-backend-go/internal/domain/timetable"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type timetableRepositoryImpl struct {
	db *database.DB
}

func NewTimetableRepository(db *database.DB) timetable.TimetableRepository {
	return &timetableRepositoryImpl{db: db}
}

const timetableSelectColumns = `
	t.id, t.assignment_id, t.day, t.period, t.start_time, t.end_time, t.shift,
	t.created_at, t.updated_at, sub.name, sec.name, f.name
`

const timetableJoins = `
	INNER JOIN subject_assignments a ON a.id = t.assignment_id
	LEFT JOIN subjects sub ON sub.id = a.subject_id
	LEFT JOIN sections sec ON sec.id = a.section_id
	LEFT JOIN faculty f ON f.id = a.faculty_id
`

// Create implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) Create(ctx context.Context, e timetable.Entry) (timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO timetable_entries (assignment_id, day, period, start_time, end_time, shift)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, assignment_id, day, period, start_time, end_time, shift, created_at, updated_at
	`

	var created timetable.Entry
	err := q.QueryRow(ctx, query,
		e.AssignmentID,
		e.Day,
		e.Period,
		e.StartTime,
		e.EndTime,
		e.Shift,
	).Scan(
		&created.ID,
		&created.AssignmentID,
		&created.Day,
		&created.Period,
		&created.StartTime,
		&created.EndTime,
		&created.Shift,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return timetable.Entry{}, err
	}

	return created, nil
}

// GetByID implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) GetByID(ctx context.Context, id string) (timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timetableSelectColumns + `
		FROM timetable_entries t
		` + timetableJoins + `
		WHERE t.id = $1
	`

	var found timetable.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.AssignmentID,
		&found.Day,
		&found.Period,
		&found.StartTime,
		&found.EndTime,
		&found.Shift,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.SubjectName,
		&found.SectionName,
		&found.FacultyName,
	)
	if err != nil {
		return timetable.Entry{}, err
	}

	return found, nil
}

// ListBySection implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) ListBySection(ctx context.Context, sectionID, semesterID string) ([]timetable.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + timetableSelectColumns + `
		FROM timetable_entries t
		` + timetableJoins + `
		WHERE a.section_id = $1 AND a.semester_id = $2
		ORDER BY t.day ASC, t.period ASC
	`

	rows, err := q.Query(ctx, query, sectionID, semesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []timetable.Entry
	for rows.Next() {
		var e timetable.Entry
		if err := rows.Scan(
			&e.ID,
			&e.AssignmentID,
			&e.Day,
			&e.Period,
			&e.StartTime,
			&e.EndTime,
			&e.Shift,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.SubjectName,
			&e.SectionName,
			&e.FacultyName,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SlotTaken implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) SlotTaken(ctx context.Context, sectionID, semesterID, day string, period int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var taken bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1
			FROM timetable_entries t
			INNER JOIN subject_assignments a ON a.id = t.assignment_id
			WHERE a.section_id = $1 AND a.semester_id = $2 AND t.day = $3 AND t.period = $4
		)
	`, sectionID, semesterID, day, period).Scan(&taken)
	if err != nil {
		return false, err
	}
	return taken, nil
}

// Delete implements timetable.TimetableRepository.
func (r *timetableRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM timetable_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
