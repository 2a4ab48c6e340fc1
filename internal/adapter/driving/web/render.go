package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/hvashisht/weddingsite/internal/domain/model"
)

// pageData is the payload every page template receives.
type pageData struct {
	Title    string
	Active   string            // Nav link to highlight.
	Flash    *flashMessage     // One-shot message from a previous redirect.
	Content  template.HTML     // Markdown-backed page copy.
	Form     map[string]string // Re-populated field values after a rejected POST.
	Error    string            // Inline form error.
	Message  string            // Error page body.
	RSVPs    []model.RSVP      // Admin dashboard listing.
	Username string
}

var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		return t.Format("Jan 2, 2006 3:04 PM")
	},
}

// parseTemplates builds one template set per page, each combined with the
// shared layout. Keys are base file names ("rsvp.html").
func parseTemplates() (map[string]*template.Template, error) {
	pages, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	parsed := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		name := path.Base(page)
		if name == "layout.html" {
			continue
		}

		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS, "templates/layout.html", page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		parsed[name] = tmpl
	}

	return parsed, nil
}

// render executes the named page template into a buffer before writing, so a
// render failure still produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data pageData) {
	tmpl, ok := h.templates[name]
	if !ok {
		h.logger.Error("template not found", "name", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		h.logger.Error("failed to render template", "name", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
