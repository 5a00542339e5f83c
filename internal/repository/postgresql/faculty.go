package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/faculty"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type facultyRepositoryImpl struct {
	db *database.DB
}

func NewFacultyRepository(db *database.DB) faculty.FacultyRepository {
	return &facultyRepositoryImpl{db: db}
}

// Create implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Create(ctx context.Context, f faculty.Faculty) (faculty.Faculty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO faculty (name, employee_code, email, department, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, employee_code, email, department, user_id, created_at, updated_at
	`

	var created faculty.Faculty
	err := q.QueryRow(ctx, query,
		f.Name,
		f.EmployeeCode,
		f.Email,
		f.Department,
		f.UserID,
	).Scan(
		&created.ID,
		&created.Name,
		&created.EmployeeCode,
		&created.Email,
		&created.Department,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return faculty.Faculty{}, err
	}

	return created, nil
}

// GetByID implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) GetByID(ctx context.Context, id string) (faculty.Faculty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_code, email, department, user_id, created_at, updated_at
		FROM faculty
		WHERE id = $1
	`

	var found faculty.Faculty
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.EmployeeCode,
		&found.Email,
		&found.Department,
		&found.UserID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return faculty.Faculty{}, err
	}

	return found, nil
}

// GetByUserID implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) GetByUserID(ctx context.Context, userID string) (faculty.Faculty, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, employee_code, email, department, user_id, created_at, updated_at
		FROM faculty
		WHERE user_id = $1
	`

	var found faculty.Faculty
	err := q.QueryRow(ctx, query, userID).Scan(
		&found.ID,
		&found.Name,
		&found.EmployeeCode,
		&found.Email,
		&found.Department,
		&found.UserID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return faculty.Faculty{}, err
	}

	return found, nil
}

// Update implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Update(ctx context.Context, f faculty.Faculty) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE faculty
		SET name = $1, email = $2, department = $3, updated_at = NOW()
		WHERE id = $4
	`, f.Name, f.Email, f.Department, f.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) List(ctx context.Context, filter faculty.FacultyFilter) ([]faculty.Faculty, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(f.name ILIKE $%d OR f.employee_code ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("f.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM faculty f WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count faculty: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT f.id, f.name, f.employee_code, f.email, f.department, f.user_id, f.created_at, f.updated_at
		FROM faculty f
		WHERE %s
		ORDER BY f.name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []faculty.Faculty
	for rows.Next() {
		var f faculty.Faculty
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.EmployeeCode,
			&f.Email,
			&f.Department,
			&f.UserID,
			&f.CreatedAt,
			&f.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		members = append(members, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// Count implements faculty.FacultyRepository.
func (r *facultyRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&total)
	return total, err
}
