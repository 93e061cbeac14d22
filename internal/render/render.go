// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Templates are embedded at compile time; each page template is paired
// with the base layout. Handlers render into a buffer so the result can
// be stored in the page cache before being written to the client.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"mekongdoors/internal/locale"
	"mekongdoors/internal/models"
)

//go:embed templates/public/*.html
var publicFS embed.FS

// PageData holds all data passed to public page templates.
type PageData struct {
	Title  string
	Locale locale.Locale
	Route  string // effective route, used for language-switch links
	Footer *models.FooterContent
	Data   map[string]any
	Year   int
}

// AltLocale returns the other supported locale, for the language switcher.
func (d *PageData) AltLocale() locale.Locale {
	if d.Locale == locale.English {
		return locale.Khmer
	}
	return locale.English
}

// uiStrings holds the fixed chrome labels per content key. Content
// comes from the store already bilingual; only navigation and form
// chrome live here.
var uiStrings = map[string]models.LocalizedText{
	"nav.home":          {EN: "Home", KM: "ទំព័រដើម"},
	"nav.products":      {EN: "Products", KM: "ផលិតផល"},
	"nav.about":         {EN: "About", KM: "អំពីយើង"},
	"nav.installations": {EN: "Installations", KM: "ការដំឡើង"},
	"nav.contact":       {EN: "Contact", KM: "ទំនាក់ទំនង"},
	"catalog.uncategorized": {EN: "Uncategorized", KM: "គ្មានប្រភេទ"},
	"contact.name":      {EN: "Your name", KM: "ឈ្មោះរបស់អ្នក"},
	"contact.phone":     {EN: "Phone number", KM: "លេខទូរស័ព្ទ"},
	"contact.send":      {EN: "Request a quote", KM: "ស្នើសុំតម្លៃ"},
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all public templates from the
// embedded filesystem.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// tr picks the localized variant of a bilingual field.
		"tr": func(l locale.Locale, t models.LocalizedText) string {
			return t.In(l.String())
		},
		// ui returns a fixed chrome label for the locale.
		"ui": func(l locale.Locale, key string) string {
			return uiStrings[key].In(l.String())
		},
		// href builds a locale-prefixed link from an effective route.
		"href": func(l locale.Locale, route string) string {
			return locale.Prefix(l, route)
		},
		"money": func(v float64) string {
			return fmt.Sprintf("$%.2f", v)
		},
	}

	entries, err := fs.ReadDir(publicFS, "templates/public")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, entry := range entries {
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "base" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			publicFS,
			"templates/public/base.html",
			"templates/public/"+entry.Name(),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Render executes the named page template into w.
func (r *Renderer) Render(w io.Writer, name string, data *PageData) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if data.Year == 0 {
		data.Year = time.Now().Year()
	}
	if data.Data == nil {
		data.Data = map[string]any{}
	}
	return tmpl.ExecuteTemplate(w, "base.html", data)
}
