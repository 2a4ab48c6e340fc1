package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	mdRenderer    goldmark.Markdown
	htmlSanitizer *bluemonday.Policy
)

func init() {
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	htmlSanitizer = bluemonday.UGCPolicy()
}

// renderMarkdown converts a markdown source to sanitized HTML.
func renderMarkdown(src []byte) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert(src, &buf); err != nil {
		return template.HTML(htmlSanitizer.Sanitize(string(src)))
	}

	return template.HTML(htmlSanitizer.Sanitize(buf.String()))
}

// loadContent renders every embedded markdown file once at startup, keyed by
// base name without extension ("story.md" -> "story").
func loadContent() (map[string]template.HTML, error) {
	files, err := fs.Glob(contentFS, "content/*.md")
	if err != nil {
		return nil, fmt.Errorf("glob content files: %w", err)
	}

	pages := make(map[string]template.HTML, len(files))
	for _, file := range files {
		src, err := fs.ReadFile(contentFS, file)
		if err != nil {
			return nil, fmt.Errorf("read content file %s: %w", file, err)
		}

		name := strings.TrimSuffix(path.Base(file), ".md")
		pages[name] = renderMarkdown(src)
	}

	return pages, nil
}
