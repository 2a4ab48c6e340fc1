package model

import "time"

// RSVP is a single guest response to the wedding invitation. Entries are
// append-only: once submitted they are never updated or deleted.
type RSVP struct {
	ID          string
	Name        string
	Mobile      string
	Guests      int
	Attending   string
	SubmittedAt time.Time
}
