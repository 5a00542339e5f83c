package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/grievance"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
)

type grievanceRepositoryImpl struct {
	db *database.DB
}

func NewGrievanceRepository(db *database.DB) grievance.GrievanceRepository {
	return &grievanceRepositoryImpl{db: db}
}

const grievanceSelectColumns = `
	g.id, g.user_id, g.subject, g.description, g.category, g.status, g.resolution,
	g.attachment_path, g.created_at, g.updated_at,
	COALESCE(f.name, st.name), u.role
`

const grievanceJoins = `
	INNER JOIN users u ON u.id = g.user_id
	LEFT JOIN faculty f ON f.user_id = u.id
	LEFT JOIN students st ON st.user_id = u.id
`

// Create implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) Create(ctx context.Context, g grievance.Grievance) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO grievances (user_id, subject, description, category, status, attachment_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, subject, description, category, status, resolution,
				  attachment_path, created_at, updated_at
	`

	var created grievance.Grievance
	err := q.QueryRow(ctx, query,
		g.UserID,
		g.Subject,
		g.Description,
		g.Category,
		g.Status,
		g.AttachmentPath,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Subject,
		&created.Description,
		&created.Category,
		&created.Status,
		&created.Resolution,
		&created.AttachmentPath,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return grievance.Grievance{}, err
	}

	return created, nil
}

// GetByID implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) GetByID(ctx context.Context, id string) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + grievanceSelectColumns + `
		FROM grievances g
		` + grievanceJoins + `
		WHERE g.id = $1
	`

	var found grievance.Grievance
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.UserID,
		&found.Subject,
		&found.Description,
		&found.Category,
		&found.Status,
		&found.Resolution,
		&found.AttachmentPath,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.RaisedByName,
		&found.RaisedByRole,
	)
	if err != nil {
		return grievance.Grievance{}, err
	}

	return found, nil
}

// ListByUser implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) ListByUser(ctx context.Context, userID string, filter grievance.GrievanceFilter) ([]grievance.Grievance, int, error) {
	conditions := []string{"g.user_id = $1"}
	args := []interface{}{userID}
	return r.list(ctx, conditions, args, filter)
}

// ListAll implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) ListAll(ctx context.Context, filter grievance.GrievanceFilter) ([]grievance.Grievance, int, error) {
	conditions := []string{"1=1"}
	args := []interface{}{}
	return r.list(ctx, conditions, args, filter)
}

func (r *grievanceRepositoryImpl) list(ctx context.Context, conditions []string, args []interface{}, filter grievance.GrievanceFilter) ([]grievance.Grievance, int, error) {
	q := GetQuerier(ctx, r.db)

	argIdx := len(args) + 1
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("g.status = $%d", argIdx))
		args = append(args, filter.Status)
		argIdx++
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("g.category = $%d", argIdx))
		args = append(args, filter.Category)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM grievances g WHERE %s", whereClause)
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count grievances: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT %s
		FROM grievances g
		%s
		WHERE %s
		ORDER BY g.created_at DESC
		LIMIT $%d OFFSET $%d
	`, grievanceSelectColumns, grievanceJoins, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var grievances []grievance.Grievance
	for rows.Next() {
		var g grievance.Grievance
		if err := rows.Scan(
			&g.ID,
			&g.UserID,
			&g.Subject,
			&g.Description,
			&g.Category,
			&g.Status,
			&g.Resolution,
			&g.AttachmentPath,
			&g.CreatedAt,
			&g.UpdatedAt,
			&g.RaisedByName,
			&g.RaisedByRole,
		); err != nil {
			return nil, 0, err
		}
		grievances = append(grievances, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return grievances, total, nil
}

// UpdateStatus implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status grievance.Status, resolution *string) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE grievances
		SET status = $1, resolution = COALESCE($2, resolution), updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, subject, description, category, status, resolution,
				  attachment_path, created_at, updated_at
	`

	var updated grievance.Grievance
	err := q.QueryRow(ctx, query, status, resolution, id).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Subject,
		&updated.Description,
		&updated.Category,
		&updated.Status,
		&updated.Resolution,
		&updated.AttachmentPath,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return grievance.Grievance{}, err
	}

	return updated, nil
}

// CountByStatus implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) CountByStatus(ctx context.Context, status grievance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM grievances WHERE status = $1`, status).Scan(&total)
	return total, err
}
