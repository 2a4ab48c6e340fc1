package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RSVPStore = (*RSVPRepo)(nil)

// rsvpDoc is the wire form of an RSVP entry in the rsvp collection.
// Field names match the documents the site has stored since launch.
type rsvpDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Mobile      string    `bson:"mobile"`
	Guests      int       `bson:"guests"`
	Attending   string    `bson:"attending"`
	SubmittedAt time.Time `bson:"timestamp"`
}

// RSVPRepo is the MongoDB implementation of the RSVPStore port interface.
type RSVPRepo struct {
	coll *mongo.Collection
}

// NewRSVPRepo creates a new RSVPRepo over the rsvp collection.
func NewRSVPRepo(db *DB) *RSVPRepo {
	return &RSVPRepo{coll: db.db.Collection("rsvp")}
}

// Insert appends a new RSVP entry.
func (r *RSVPRepo) Insert(ctx context.Context, entry model.RSVP) error {
	ctx, cancel := opContext(ctx)
	defer cancel()

	doc := rsvpDoc{
		ID:          entry.ID,
		Name:        entry.Name,
		Mobile:      entry.Mobile,
		Guests:      entry.Guests,
		Attending:   entry.Attending,
		SubmittedAt: entry.SubmittedAt.UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert rsvp %s: %w", entry.ID, err)
	}

	return nil
}

// ListAll returns every RSVP entry in natural (insertion) order.
func (r *RSVPRepo) ListAll(ctx context.Context) ([]model.RSVP, error) {
	ctx, cancel := opContext(ctx)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []model.RSVP
	for cursor.Next(ctx) {
		var doc rsvpDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode rsvp: %w", err)
		}
		entries = append(entries, model.RSVP{
			ID:          doc.ID,
			Name:        doc.Name,
			Mobile:      doc.Mobile,
			Guests:      doc.Guests,
			Attending:   doc.Attending,
			SubmittedAt: doc.SubmittedAt.UTC(),
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate rsvps: %w", err)
	}

	return entries, nil
}
