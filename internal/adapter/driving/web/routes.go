package web

import (
	"io/fs"
	"net/http"
)

// RegisterRoutes registers every page and action on the provided mux.
// Static assets are served from the embedded filesystem at /static/*.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	staticFS, _ := fs.Sub(StaticFS, "static")
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /story", h.Story)
	mux.HandleFunc("GET /events", h.Events)
	mux.HandleFunc("GET /gallery", h.Gallery)

	mux.HandleFunc("GET /rsvp", h.RSVPForm)
	mux.HandleFunc("POST /rsvp", h.SubmitRSVP)

	mux.HandleFunc("GET /admin_login", h.LoginForm)
	mux.HandleFunc("POST /admin_login", h.Login)
	mux.HandleFunc("GET /admin", h.Dashboard)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.HandleFunc("GET /healthz", h.Health)

	// Everything else falls through to the styled 404 page.
	mux.HandleFunc("/", h.NotFound)
}
