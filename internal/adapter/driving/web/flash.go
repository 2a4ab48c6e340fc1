package web

import (
	"net/http"
	"strings"
)

const flashCookieName = "flash"

// flashMessage is a one-shot notification shown on the page after a redirect.
// Kind is used as a CSS class suffix ("success", "info", "danger").
type flashMessage struct {
	Kind    string
	Message string
}

// SetFlash stores a flash message in a signed cookie so it survives the
// redirect that follows a successful POST. The signature reuses the session
// key; a tampered flash is silently dropped on read.
func (s *Sessions) SetFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	payload := kind + "|" + message
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    s.token(payload),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the pending flash message, if any, and clears it so it is
// shown exactly once.
func (s *Sessions) PopFlash(w http.ResponseWriter, r *http.Request) *flashMessage {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := s.verify(cookie.Value)
	if err != nil {
		return nil
	}

	kind, message, ok := strings.Cut(payload, "|")
	if !ok || message == "" {
		return nil
	}

	return &flashMessage{Kind: kind, Message: message}
}
