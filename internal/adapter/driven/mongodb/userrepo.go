package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.UserStore = (*UserRepo)(nil)

// userDoc is the wire form of an admin user in the users collection.
// The bcrypt hash lives in the "password" field the collection has always had.
type userDoc struct {
	Username     string `bson:"username"`
	PasswordHash string `bson:"password"`
	Role         string `bson:"role"`
}

// UserRepo is the MongoDB implementation of the UserStore port interface.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo creates a new UserRepo over the users collection.
func NewUserRepo(db *DB) *UserRepo {
	return &UserRepo{coll: db.db.Collection("users")}
}

// FindByUsername retrieves an admin user by username.
// Returns driven.ErrUserNotFound if no document matches.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	var doc userDoc
	err := r.coll.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.AdminUser{}, driven.ErrUserNotFound
	}
	if err != nil {
		return model.AdminUser{}, fmt.Errorf("find user %q: %w", username, err)
	}

	return model.AdminUser{
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
	}, nil
}

// Insert appends a new admin user document.
func (r *UserRepo) Insert(ctx context.Context, user model.AdminUser) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	doc := userDoc{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}

	return nil
}
