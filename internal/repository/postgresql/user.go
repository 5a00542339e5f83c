package postgresql

import (
	"context"

	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userSelectColumns = `
	u.id, u.email, u.password_hash, u.role, u.oauth_provider, u.oauth_provider_id,
	u.active, u.created_at, u.updated_at, f.id, s.id
`

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		LEFT JOIN faculty f ON f.user_id = u.id
		LEFT JOIN students s ON s.user_id = u.id
		WHERE u.email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.Active,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.FacultyID,
		&found.StudentID,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		LEFT JOIN faculty f ON f.user_id = u.id
		LEFT JOIN students s ON s.user_id = u.id
		WHERE u.id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.Active,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.FacultyID,
		&found.StudentID,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByStudentRollNo implements user.UserRepository.
func (r *userRepositoryImpl) GetByStudentRollNo(ctx context.Context, rollNo string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userSelectColumns + `
		FROM users u
		LEFT JOIN faculty f ON f.user_id = u.id
		INNER JOIN students s ON s.user_id = u.id
		WHERE s.roll_no = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, rollNo).Scan(
		&found.ID,
		&found.Email,
		&found.PasswordHash,
		&found.Role,
		&found.OAuthProvider,
		&found.OAuthProviderID,
		&found.Active,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.FacultyID,
		&found.StudentID,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, password_hash, role, oauth_provider, oauth_provider_id, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, password_hash, role, oauth_provider, oauth_provider_id,
				  active, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.OAuthProvider,
		newUser.OAuthProviderID,
		newUser.Active,
	).Scan(
		&created.ID,
		&created.Email,
		&created.PasswordHash,
		&created.Role,
		&created.OAuthProvider,
		&created.OAuthProviderID,
		&created.Active,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING id, email, password_hash, role, oauth_provider, oauth_provider_id,
				  active, created_at, updated_at
	`

	var updated user.User
	err := q.QueryRow(ctx, query, "google", googleID, email).Scan(
		&updated.ID,
		&updated.Email,
		&updated.PasswordHash,
		&updated.Role,
		&updated.OAuthProvider,
		&updated.OAuthProviderID,
		&updated.Active,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return updated, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`, passwordHash, userID)
	return err
}

// ListIDsByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListIDsByRole(ctx context.Context, role user.Role) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM users WHERE role = $1 AND active = true`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ListIDsBySection implements user.UserRepository.
func (r *userRepositoryImpl) ListIDsBySection(ctx context.Context, sectionID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id
		FROM users u
		INNER JOIN students s ON s.user_id = u.id
		WHERE s.section_id = $1 AND u.active = true
	`

	rows, err := q.Query(ctx, query, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
