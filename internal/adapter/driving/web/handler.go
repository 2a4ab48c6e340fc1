// Package web is the HTML driving adapter: route handlers, session cookies,
// and template rendering for the public site and the admin dashboard.
package web

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/hvashisht/weddingsite/internal/application"
)

// Handler serves every page of the site. All state it touches lives behind
// the injected services; handlers themselves are stateless.
type Handler struct {
	rsvpSvc   *application.RSVPService
	authSvc   *application.AuthService
	sessions  *Sessions
	templates map[string]*template.Template
	content   map[string]template.HTML
	logger    *slog.Logger
}

// NewHandler creates a Handler, parsing the embedded templates and rendering
// the embedded markdown page copy once up front.
func NewHandler(
	rsvpSvc *application.RSVPService,
	authSvc *application.AuthService,
	sessions *Sessions,
	logger *slog.Logger,
) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	content, err := loadContent()
	if err != nil {
		return nil, err
	}

	return &Handler{
		rsvpSvc:   rsvpSvc,
		authSvc:   authSvc,
		sessions:  sessions,
		templates: templates,
		content:   content,
		logger:    logger,
	}, nil
}

// Home renders the landing page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "home.html", pageData{
		Title:  "Welcome",
		Active: "home",
		Flash:  h.sessions.PopFlash(w, r),
	})
}

// Story renders the couple's story page from its markdown copy.
func (h *Handler) Story(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "story.html", pageData{
		Title:   "Our Story",
		Active:  "story",
		Content: h.content["story"],
	})
}

// Events renders the events schedule page from its markdown copy.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "events.html", pageData{
		Title:   "Events",
		Active:  "events",
		Content: h.content["events"],
	})
}

// Gallery renders the photo gallery page.
func (h *Handler) Gallery(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "gallery.html", pageData{
		Title:  "Gallery",
		Active: "gallery",
	})
}

// RSVPForm renders the RSVP form, with the flash from a previous submission
// if one is pending.
func (h *Handler) RSVPForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "rsvp.html", pageData{
		Title:  "RSVP",
		Active: "rsvp",
		Flash:  h.sessions.PopFlash(w, r),
	})
}

// SubmitRSVP handles the RSVP form POST. A validation failure re-renders the
// form in place with the submitted values; success sets a flash and redirects
// back to GET /rsvp so a refresh cannot double-submit.
func (h *Handler) SubmitRSVP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, "rsvp.html", pageData{
			Title:  "RSVP",
			Active: "rsvp",
			Error:  "Could not read the submitted form. Please try again.",
		})
		return
	}

	form := application.RSVPForm{
		Name:      r.PostFormValue("name"),
		Mobile:    r.PostFormValue("mobile"),
		Guests:    r.PostFormValue("guests"),
		Attending: r.PostFormValue("attending"),
	}

	_, err := h.rsvpSvc.Submit(r.Context(), form)
	var verr *application.ValidationError
	if errors.As(err, &verr) {
		h.render(w, http.StatusBadRequest, "rsvp.html", pageData{
			Title:  "RSVP",
			Active: "rsvp",
			Error:  verr.Message,
			Form: map[string]string{
				"name":      form.Name,
				"mobile":    form.Mobile,
				"guests":    form.Guests,
				"attending": form.Attending,
			},
		})
		return
	}
	if err != nil {
		h.serverError(w, "submit rsvp", err)
		return
	}

	h.sessions.SetFlash(w, r, "success", "Thank you for your RSVP, Seema will be happy to see you!")
	http.Redirect(w, r, "/rsvp", http.StatusFound)
}

// LoginForm renders the admin login page.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "admin_login.html", pageData{Title: "Admin Login"})
}

// Login handles the admin login POST. Failure re-renders the form with a
// generic message so the response does not reveal whether the username exists.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, "admin_login.html", pageData{
			Title: "Admin Login",
			Error: "Could not read the submitted form. Please try again.",
		})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.authSvc.Authenticate(r.Context(), username, password)
	if errors.Is(err, application.ErrInvalidCredentials) {
		h.render(w, http.StatusUnauthorized, "admin_login.html", pageData{
			Title: "Admin Login",
			Error: "Invalid credentials",
			Form:  map[string]string{"username": username},
		})
		return
	}
	if err != nil {
		h.serverError(w, "authenticate admin", err)
		return
	}

	h.sessions.Establish(w, r, user.Username)
	http.Redirect(w, r, "/admin", http.StatusFound)
}

// Dashboard lists every RSVP for a logged-in admin. Without a valid session
// it redirects to the login page.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	username := h.sessions.Username(r)
	if username == "" {
		http.Redirect(w, r, "/admin_login", http.StatusFound)
		return
	}

	entries, err := h.rsvpSvc.List(r.Context())
	if err != nil {
		h.serverError(w, "list rsvps", err)
		return
	}

	h.render(w, http.StatusOK, "admin.html", pageData{
		Title:    "Admin Dashboard",
		RSVPs:    entries,
		Username: username,
	})
}

// Logout clears the session and sends the visitor back to the home page.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	h.sessions.SetFlash(w, r, "info", "Logged out successfully")
	http.Redirect(w, r, "/", http.StatusFound)
}

// NotFound renders the styled 404 page for any unregistered path.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "error.html", pageData{
		Title:   "Page Not Found",
		Message: "The page you are looking for does not exist.",
	})
}

// Health is the JSON liveness probe used by the container HEALTHCHECK.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// serverError logs the failure for operators and renders the generic error
// page. Store errors are never retried here; the guest can resubmit.
func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op, "error", err)
	h.render(w, http.StatusInternalServerError, "error.html", pageData{
		Title:   "Something Went Wrong",
		Message: "Sorry, something went wrong on our side. Please try again in a moment.",
	})
}
