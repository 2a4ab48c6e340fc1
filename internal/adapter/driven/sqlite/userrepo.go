package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// UserRepo is the SQLite implementation of the UserStore port interface.
type UserRepo struct {
	db *DB
}

// NewUserRepo creates a new UserRepo backed by the given DB.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{db: db}
}

// FindByUsername retrieves an admin user by username.
// Returns driven.ErrUserNotFound if no record matches.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	const query = `SELECT username, password_hash, role FROM users WHERE username = ?`

	var user model.AdminUser
	err := r.db.Reader.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.PasswordHash, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AdminUser{}, driven.ErrUserNotFound
	}
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("find user %q: %w", username, err)
	}

	return user, nil
}

// Insert appends a new admin user record.
func (r *UserRepo) Insert(ctx context.Context, user model.AdminUser) error {
	const query = `INSERT INTO users (username, password_hash, role) VALUES (?, ?, ?)`

	_, err := r.db.Writer.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Role)
	if err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}

	return nil
}
