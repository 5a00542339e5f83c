package postgresql

import (
	"context"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetFacultyDaySchedule implements schedule.ScheduleRepository. The
// attendance_taken flag is derived from the records table: a class counts as
// taken once any record exists for its class key on the given date.
func (r *scheduleRepositoryImpl) GetFacultyDaySchedule(ctx context.Context, facultyID, day, date string) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			sub.id, sub.name, sub.subject_code, sub.weekly_hours,
			sec.id, sec.name, sec.max_strength,
			(SELECT COUNT(*) FROM students st WHERE st.section_id = sec.id),
			sem.id, sem.number, sem.current, sem.branch,
			t.day, t.period, t.start_time, t.end_time, t.shift,
			EXISTS(
				SELECT 1 FROM attendance_records ar
				WHERE ar.section_id = sec.id
				  AND ar.subject_id = sub.id
				  AND ar.semester_id = sem.id
				  AND ar.period = t.period
				  AND ar.shift = t.shift
				  AND ar.date = $3::date
			)
		FROM timetable_entries t
		INNER JOIN subject_assignments a ON a.id = t.assignment_id
		INNER JOIN subjects sub ON sub.id = a.subject_id
		INNER JOIN sections sec ON sec.id = a.section_id
		INNER JOIN semesters sem ON sem.id = a.semester_id
		WHERE a.faculty_id = $1 AND t.day = $2
		ORDER BY t.period ASC
	`

	rows, err := q.Query(ctx, query, facultyID, day, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		if err := rows.Scan(
			&e.Subject.ID,
			&e.Subject.Name,
			&e.Subject.SubjectCode,
			&e.Subject.WeeklyHours,
			&e.Section.ID,
			&e.Section.Name,
			&e.Section.MaxStrength,
			&e.Section.CurrentStrength,
			&e.Semester.ID,
			&e.Semester.Number,
			&e.Semester.Current,
			&e.Semester.Branch,
			&e.TimeSlot.Day,
			&e.TimeSlot.Period,
			&e.TimeSlot.StartTime,
			&e.TimeSlot.EndTime,
			&e.TimeSlot.Shift,
			&e.AttendanceTaken,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
