package driven

import (
	"context"
	"errors"

	"github.com/hvashisht/weddingsite/internal/domain/model"
)

// ErrUserNotFound indicates no admin user exists for the requested username.
var ErrUserNotFound = errors.New("user not found")

// UserStore defines the driven port for admin credential persistence.
// FindByUsername returns ErrUserNotFound when no record matches.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (model.AdminUser, error)
	Insert(ctx context.Context, user model.AdminUser) error
}
