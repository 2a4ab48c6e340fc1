package driven

import (
	"context"

	"github.com/hvashisht/weddingsite/internal/domain/model"
)

// RSVPStore defines the driven port for RSVP persistence. Entries have no
// uniqueness constraint; the same guest may submit more than once and every
// submission is kept. ListAll returns entries in insertion order.
type RSVPStore interface {
	Insert(ctx context.Context, entry model.RSVP) error
	ListAll(ctx context.Context) ([]model.RSVP, error)
}
