package application

import (
	"context"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.RSVPStore = (*fakeRSVPStore)(nil)
	_ driven.UserStore = (*fakeUserStore)(nil)
)

// fakeRSVPStore is an in-memory RSVPStore for service tests.
type fakeRSVPStore struct {
	entries   []model.RSVP
	insertErr error
	listErr   error
}

func (f *fakeRSVPStore) Insert(_ context.Context, entry model.RSVP) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeRSVPStore) ListAll(_ context.Context) ([]model.RSVP, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.RSVP(nil), f.entries...), nil
}

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users     map[string]model.AdminUser
	findErr   error
	insertErr error
	inserts   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]model.AdminUser)}
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (model.AdminUser, error) {
	if f.findErr != nil {
		return model.AdminUser{}, f.findErr
	}
	user, ok := f.users[username]
	if !ok {
		return model.AdminUser{}, driven.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user model.AdminUser) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserts++
	f.users[user.Username] = user
	return nil
}
