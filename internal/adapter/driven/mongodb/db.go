// Package mongodb implements the store ports on a MongoDB deployment, using
// the production data layout: database wedding_db with collections rsvp and
// users. It is selected when DATABASE_URI has a mongodb:// or mongodb+srv://
// scheme.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const databaseName = "wedding_db"

// opTimeout bounds every store call so an unreachable deployment fails the
// request instead of hanging it.
const opTimeout = 5 * time.Second

// DB wraps the MongoDB client and the wedding database handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to the deployment at uri and verifies it is reachable.
func NewDB(ctx context.Context, uri string) (*DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return &DB{client: client, db: client.Database(databaseName)}, nil
}

// Close disconnects from the deployment.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnect from mongodb: %w", err)
	}
	return nil
}

// opContext derives a deadline-bounded context for a single store operation.
func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}
