package mysql

import (
	"context"
	"database/sql"

	domain "github.com/bryanwahyu/ai-readiness/internal/domain/users"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert matches on the unique email column so repeat logins refresh the
// provider profile instead of growing duplicate rows.
func (r *UserRepository) Upsert(ctx context.Context, u *domain.User) error {
	const q = `
INSERT INTO users (id, email, display_name, profile_picture, provider, google_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  display_name = VALUES(display_name),
  profile_picture = VALUES(profile_picture),
  google_id = VALUES(google_id)`
	_, err := r.db.ExecContext(ctx, q,
		u.ID, u.Email, u.DisplayName, nullable(u.ProfilePicture), u.Provider, nullable(u.GoogleID), u.CreatedAt)
	return err
}

func (r *UserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id, email, display_name, profile_picture, provider, google_id, created_at
FROM users WHERE id = ?`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id, email, display_name, profile_picture, provider, google_id, created_at
FROM users WHERE email = ?`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var picture, googleID sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &picture, &u.Provider, &googleID, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	u.ProfilePicture = picture.String
	u.GoogleID = googleID.String
	return &u, nil
}
