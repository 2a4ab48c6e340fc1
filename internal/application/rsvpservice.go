// Package application contains the services driving the site's use cases.
package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hvashisht/weddingsite/internal/domain/model"
	"github.com/hvashisht/weddingsite/internal/domain/port/driven"
)

// RSVPForm carries the raw form fields of an RSVP submission before validation.
type RSVPForm struct {
	Name      string
	Mobile    string
	Guests    string
	Attending string
}

// ValidationError reports a rejected submission. Message is safe to show to
// the guest; Field names the offending form field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

// RSVPService validates and persists guest responses. It depends only on the
// RSVPStore port.
type RSVPService struct {
	rsvps driven.RSVPStore
	now   func() time.Time // Overridable in tests.
}

// NewRSVPService creates a new RSVPService backed by the given store.
func NewRSVPService(rsvps driven.RSVPStore) *RSVPService {
	return &RSVPService{rsvps: rsvps, now: time.Now}
}

// Submit validates the form and persists exactly one entry. A *ValidationError
// is returned before anything is written; any other error comes from the store.
func (s *RSVPService) Submit(ctx context.Context, form RSVPForm) (model.RSVP, error) {
	name := strings.TrimSpace(form.Name)
	mobile := strings.TrimSpace(form.Mobile)
	guestsRaw := strings.TrimSpace(form.Guests)
	attending := strings.TrimSpace(form.Attending)

	switch {
	case name == "":
		return model.RSVP{}, &ValidationError{Field: "name", Message: "Please tell us your name."}
	case mobile == "":
		return model.RSVP{}, &ValidationError{Field: "mobile", Message: "Please provide a mobile number."}
	case guestsRaw == "":
		return model.RSVP{}, &ValidationError{Field: "guests", Message: "Please tell us how many guests you are bringing."}
	case attending == "":
		return model.RSVP{}, &ValidationError{Field: "attending", Message: "Please let us know whether you are attending."}
	}

	guests, err := strconv.Atoi(guestsRaw)
	if err != nil || guests < 0 {
		return model.RSVP{}, &ValidationError{Field: "guests", Message: "Guest count must be a whole number of zero or more."}
	}

	entry := model.RSVP{
		ID:          uuid.NewString(),
		Name:        name,
		Mobile:      mobile,
		Guests:      guests,
		Attending:   attending,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.rsvps.Insert(ctx, entry); err != nil {
		return model.RSVP{}, fmt.Errorf("insert rsvp: %w", err)
	}

	return entry, nil
}

// List returns every stored response in insertion order.
func (s *RSVPService) List(ctx context.Context) ([]model.RSVP, error) {
	entries, err := s.rsvps.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rsvps: %w", err)
	}
	return entries, nil
}
