package auth

import (
	"context"
	"database/sql"
	"errors"
)

// User is a staff account row.
type User struct {
	ID       int
	Email    string
	Password string
	Role     Role
	Name     string
}

// UserStore looks up staff accounts for login.
type UserStore interface {
	// ByEmail returns (nil, nil) when no account matches; a non-nil error
	// means the store itself failed.
	ByEmail(ctx context.Context, email string) (*User, error)
}

// SQLUserStore reads users from Postgres.
type SQLUserStore struct {
	db *sql.DB
}

// NewUserStore creates a store backed by the shared pool.
func NewUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{db: db}
}

// ByEmail fetches a single account by email.
func (s *SQLUserStore) ByEmail(ctx context.Context, email string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, email, password, role, name
		FROM users
		WHERE email = $1
	`, email)
	var u User
	if err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
