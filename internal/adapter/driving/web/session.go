package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	sessionCookieName = "session"
	sessionMaxAge     = 24 * time.Hour
)

var errInvalidToken = errors.New("invalid session token")

// Sessions mints and verifies tamper-evident login cookies. A token is the
// base64 payload "username|issued-at-unix" joined with an HMAC-SHA256
// signature keyed by SECRET_KEY; no session state is held server-side, so a
// cookie that verifies is the whole proof of a prior successful login.
type Sessions struct {
	secret []byte
	now    func() time.Time // Overridable in tests.
}

// NewSessions creates a session manager signing with the given secret.
func NewSessions(secret string) *Sessions {
	return &Sessions{secret: []byte(secret), now: time.Now}
}

// Establish sets a session cookie asserting that username just authenticated.
func (s *Sessions) Establish(w http.ResponseWriter, r *http.Request, username string) {
	payload := fmt.Sprintf("%s|%d", username, s.now().Unix())
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    s.token(payload),
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

// Username returns the authenticated username for the request, or "" when the
// session cookie is absent, tampered with, or older than sessionMaxAge.
func (s *Sessions) Username(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	payload, err := s.verify(cookie.Value)
	if err != nil {
		return ""
	}

	username, issuedRaw, ok := strings.Cut(payload, "|")
	if !ok || username == "" {
		return ""
	}
	issuedUnix, err := strconv.ParseInt(issuedRaw, 10, 64)
	if err != nil {
		return ""
	}
	if s.now().Sub(time.Unix(issuedUnix, 0)) > sessionMaxAge {
		return ""
	}

	return username
}

// Destroy clears the session cookie unconditionally. Destroying an absent
// session is a no-op.
func (s *Sessions) Destroy(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Sessions) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *Sessions) token(payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(payload)) + "." + s.sign(payload)
}

func (s *Sessions) verify(token string) (string, error) {
	encoded, sig, ok := strings.Cut(token, ".")
	if !ok {
		return "", errInvalidToken
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errInvalidToken
	}
	payload := string(payloadBytes)

	if !hmac.Equal([]byte(sig), []byte(s.sign(payload))) {
		return "", errInvalidToken
	}

	return payload, nil
}
