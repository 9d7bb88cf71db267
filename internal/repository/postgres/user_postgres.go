package postgres

import (
	"context"
	"database/sql"

	"bizgenius/internal/model"
	"bizgenius/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

// NewUserPostgres creates a new UserPostgres repository.
func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

// FindByID fetches a single user by ID.
func (r *UserPostgres) FindByID(ctx context.Context, id string) (*model.User, error) {
	const q = `
		SELECT id, email, full_name, headline, location, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.db.QueryRowContext(ctx, q, id))
}

// Update persists the editable profile fields and returns the stored row.
func (r *UserPostgres) Update(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		UPDATE users
		SET full_name = $2, headline = $3, location = $4, updated_at = now()
		WHERE id = $1
		RETURNING id, email, full_name, headline, location, created_at, updated_at
	`
	return scanUser(r.db.QueryRowContext(ctx, q, u.ID, u.FullName, u.Headline, u.Location))
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.Headline,
		&u.Location,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
