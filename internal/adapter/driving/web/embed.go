package web

import "embed"

// StaticFS holds the embedded stylesheet and other static assets.
//
//go:embed static/*
var StaticFS embed.FS

//go:embed templates/*.html
var templatesFS embed.FS

// contentFS holds the markdown page copy, editable without touching templates.
//
//go:embed content/*.md
var contentFS embed.FS
