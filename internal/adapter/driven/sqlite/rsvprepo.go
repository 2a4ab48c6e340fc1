package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.RSVPStore = (*RSVPRepo)(nil)

// RSVPRepo is the SQLite implementation of the RSVPStore port interface.
type RSVPRepo struct {
	db *DB
}

// NewRSVPRepo creates a new RSVPRepo backed by the given DB.
func NewRSVPRepo(db *DB) *RSVPRepo {
	return &RSVPRepo{db: db}
}

// Insert appends a new RSVP entry.
func (r *RSVPRepo) Insert(ctx context.Context, entry model.RSVP) error {
	const query = `INSERT INTO rsvp (id, name, mobile, guests, attending, submitted_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Writer.ExecContext(ctx, query,
		entry.ID,
		entry.Name,
		entry.Mobile,
		entry.Guests,
		entry.Attending,
		entry.SubmittedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert rsvp %s: %w", entry.ID, err)
	}

	return nil
}

// ListAll returns every RSVP entry in insertion order.
func (r *RSVPRepo) ListAll(ctx context.Context) ([]model.RSVP, error) {
	const query = `SELECT id, name, mobile, guests, attending, submitted_at FROM rsvp ORDER BY seq`

	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	defer rows.Close()

	var entries []model.RSVP
	for rows.Next() {
		var entry model.RSVP
		var submittedAt string
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Mobile, &entry.Guests, &entry.Attending, &submittedAt); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}

		entry.SubmittedAt, err = parseTime(submittedAt)
		if err != nil {
			return nil, fmt.Errorf("parse submitted_at for rsvp %s: %w", entry.ID, err)
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rsvps: %w", err)
	}

	return entries, nil
}

// parseTime tries the SQLite datetime formats an entry may have been stored with.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
