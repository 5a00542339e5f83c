package attendance

import (
	"context"

	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
)

// AttendanceRepository persists submitted attendance records. Everything
// before submission lives in the in-memory marking session.
type AttendanceRepository interface {
	// HasTaken reports whether records already exist for the class key on
	// the given date (YYYY-MM-DD). It backs both the schedule view's
	// attendance_taken flag and the double-submission guard.
	HasTaken(ctx context.Context, key schedule.ClassKey, date string) (bool, error)

	// BulkCreate inserts all records of one submission. Callers run it
	// inside a transaction so a partial roster is never persisted.
	BulkCreate(ctx context.Context, records []Record) error

	// ListByStudent retrieves a student's own records with filters and
	// pagination.
	ListByStudent(ctx context.Context, studentID string, filter RecordFilter) ([]Record, int64, error)

	// ListByClass retrieves the records of one submitted class session.
	ListByClass(ctx context.Context, key schedule.ClassKey, date string) ([]Record, error)

	// CountSessionsOnDate counts distinct submitted class sessions on a
	// date, for the admin dashboard.
	CountSessionsOnDate(ctx context.Context, date string) (int64, error)

	// CountByStudent returns a student's total record count and how many of
	// them count as attended (PRESENT or LATE).
	CountByStudent(ctx context.Context, studentID string) (total int64, attended int64, err error)

	// ListAbsentUserIDsOnDate returns the user ids of students marked ABSENT
	// on the given date, for the daily digest.
	ListAbsentUserIDsOnDate(ctx context.Context, date string) ([]string, error)
}
