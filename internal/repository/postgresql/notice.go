package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/campuscore/ums-backend-go/internal/domain/notice"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type noticeRepositoryImpl struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepositoryImpl{db: db}
}

// Create implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Create(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notices (title, body, audience, posted_by, pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, body, audience, posted_by, pinned, created_at, updated_at
	`

	var created notice.Notice
	err := q.QueryRow(ctx, query,
		n.Title,
		n.Body,
		n.Audience,
		n.PostedBy,
		n.Pinned,
	).Scan(
		&created.ID,
		&created.Title,
		&created.Body,
		&created.Audience,
		&created.PostedBy,
		&created.Pinned,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return notice.Notice{}, err
	}

	return created, nil
}

// GetByID implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) GetByID(ctx context.Context, id string) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.title, n.body, n.audience, n.posted_by, n.pinned,
			   n.created_at, n.updated_at, u.email
		FROM notices n
		LEFT JOIN users u ON u.id = n.posted_by
		WHERE n.id = $1
	`

	var found notice.Notice
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Title,
		&found.Body,
		&found.Audience,
		&found.PostedBy,
		&found.Pinned,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.PostedByName,
	)
	if err != nil {
		return notice.Notice{}, err
	}

	return found, nil
}

// ListForAudience implements notice.NoticeRepository. Pinned notices sort
// first, newest after.
func (r *noticeRepositoryImpl) ListForAudience(ctx context.Context, audiences []notice.Audience, filter notice.NoticeFilter) ([]notice.Notice, int, error) {
	q := GetQuerier(ctx, r.db)

	placeholders := make([]string, 0, len(audiences))
	args := make([]interface{}, 0, len(audiences)+2)
	for i, a := range audiences {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, a)
	}
	whereClause := fmt.Sprintf("n.audience IN (%s)", strings.Join(placeholders, ", "))

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM notices n WHERE %s", whereClause)
	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notices: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT n.id, n.title, n.body, n.audience, n.posted_by, n.pinned,
			   n.created_at, n.updated_at, u.email
		FROM notices n
		LEFT JOIN users u ON u.id = n.posted_by
		WHERE %s
		ORDER BY n.pinned DESC, n.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(audiences)+1, len(audiences)+2)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var n notice.Notice
		if err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Body,
			&n.Audience,
			&n.PostedBy,
			&n.Pinned,
			&n.CreatedAt,
			&n.UpdatedAt,
			&n.PostedByName,
		); err != nil {
			return nil, 0, err
		}
		notices = append(notices, n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return notices, total, nil
}

// Delete implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Count implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var total int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notices`).Scan(&total)
	return total, err
}
