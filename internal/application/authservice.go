package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so a caller cannot tell which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies dashboard logins and seeds the default admin account.
type AuthService struct {
	users     driven.UserStore
	adminUser string
	adminPass string
}

// NewAuthService creates an AuthService using the configured default admin
// credentials for bootstrap.
func NewAuthService(users driven.UserStore, adminUser, adminPass string) *AuthService {
	return &AuthService{users: users, adminUser: adminUser, adminPass: adminPass}
}

// EnsureAdmin creates the default admin record if it does not exist yet.
// Safe to call on every startup. The exists check and the insert are not
// atomic, so two processes bootstrapping an empty store at the same moment
// can both insert; Authenticate only ever reads one record per username, so
// the duplicate is harmless.
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	_, err := s.users.FindByUsername(ctx, s.adminUser)
	if err == nil {
		return nil
	}
	if !errors.Is(err, driven.ErrUserNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.adminPass), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := model.AdminUser{
		Username:     s.adminUser,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return fmt.Errorf("create default admin: %w", err)
	}

	slog.Info("default admin created", "username", s.adminUser)
	return nil
}

// Authenticate verifies a username/password pair against the stored credential.
// The bcrypt comparison is constant-time; the stored hash is never compared
// with plain equality.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (model.AdminUser, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, driven.ErrUserNotFound) {
		return model.AdminUser{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.AdminUser{}, ErrInvalidCredentials
	}

	return user, nil
}
