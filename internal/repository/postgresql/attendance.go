package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// HasTaken implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) HasTaken(ctx context.Context, key schedule.ClassKey, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var taken bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM attendance_records
			WHERE section_id = $1 AND subject_id = $2 AND semester_id = $3
			  AND period = $4 AND shift = $5 AND date = $6::date
		)
	`, key.SectionID, key.SubjectID, key.SemesterID, key.Period, key.Shift, date).Scan(&taken)
	if err != nil {
		return false, err
	}
	return taken, nil
}

// BulkCreate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) BulkCreate(ctx context.Context, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	valueStrings := make([]string, 0, len(records))
	valueArgs := make([]interface{}, 0, len(records)*11)

	for i, rec := range records {
		base := i * 11
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10, base+11,
		))
		valueArgs = append(valueArgs,
			rec.ID,
			rec.StudentID,
			rec.SectionID,
			rec.SubjectID,
			rec.SemesterID,
			rec.Date,
			rec.Period,
			rec.Shift,
			rec.Status,
			rec.Remarks,
			rec.MarkedBy,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO attendance_records (id, student_id, section_id, subject_id, semester_id, date, period, shift, status, remarks, marked_by)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	_, err := q.Exec(ctx, query, valueArgs...)
	if err != nil {
		return fmt.Errorf("failed to bulk create attendance records: %w", err)
	}

	return nil
}

// ListByStudent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByStudent(ctx context.Context, studentID string, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"ar.student_id = $1"}
	args := []interface{}{studentID}
	argIdx := 2

	if filter.SubjectID != nil && *filter.SubjectID != "" {
		conditions = append(conditions, fmt.Sprintf("ar.subject_id = $%d", argIdx))
		args = append(args, *filter.SubjectID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d::date", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("ar.date <= $%d::date", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendance_records ar WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT ar.id, ar.student_id, ar.section_id, ar.subject_id, ar.semester_id,
			   ar.date, ar.period, ar.shift, ar.status, ar.remarks, ar.marked_by, ar.created_at,
			   st.name, st.roll_no, sub.name
		FROM attendance_records ar
		LEFT JOIN students st ON st.id = ar.student_id
		LEFT JOIN subjects sub ON sub.id = ar.subject_id
		WHERE %s
		ORDER BY ar.date DESC, ar.period ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// ListByClass implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByClass(ctx context.Context, key schedule.ClassKey, date string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.student_id, ar.section_id, ar.subject_id, ar.semester_id,
			   ar.date, ar.period, ar.shift, ar.status, ar.remarks, ar.marked_by, ar.created_at,
			   st.name, st.roll_no, sub.name
		FROM attendance_records ar
		LEFT JOIN students st ON st.id = ar.student_id
		LEFT JOIN subjects sub ON sub.id = ar.subject_id
		WHERE ar.section_id = $1 AND ar.subject_id = $2 AND ar.semester_id = $3
		  AND ar.period = $4 AND ar.shift = $5 AND ar.date = $6::date
		ORDER BY st.roll_no ASC
	`

	rows, err := q.Query(ctx, query, key.SectionID, key.SubjectID, key.SemesterID, key.Period, key.Shift, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// CountSessionsOnDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountSessionsOnDate(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(DISTINCT (section_id, subject_id, semester_id, period, shift))
		FROM attendance_records
		WHERE date = $1::date
	`, date).Scan(&total)
	return total, err
}

// CountByStudent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CountByStudent(ctx context.Context, studentID string) (int64, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total, attended int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status IN ('PRESENT', 'LATE'))
		FROM attendance_records
		WHERE student_id = $1
	`, studentID).Scan(&total, &attended)
	return total, attended, err
}

// ListAbsentUserIDsOnDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListAbsentUserIDsOnDate(ctx context.Context, date string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT st.user_id
		FROM attendance_records ar
		JOIN students st ON st.id = ar.student_id
		WHERE ar.date = $1::date AND ar.status = 'ABSENT' AND st.user_id IS NOT NULL
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var userIDs []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, rows.Err()
}

func scanRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID,
			&rec.StudentID,
			&rec.SectionID,
			&rec.SubjectID,
			&rec.SemesterID,
			&rec.Date,
			&rec.Period,
			&rec.Shift,
			&rec.Status,
			&rec.Remarks,
			&rec.MarkedBy,
			&rec.CreatedAt,
			&rec.StudentName,
			&rec.RollNo,
			&rec.SubjectName,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
