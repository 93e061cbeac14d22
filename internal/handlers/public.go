// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mekongdoors/internal/cache"
	"mekongdoors/internal/content"
	"mekongdoors/internal/locale"
	"mekongdoors/internal/markdown"
	"mekongdoors/internal/models"
	"mekongdoors/internal/render"
)

// Public serves the visitor-facing HTML pages. Every page goes through
// the rendered-page cache when one is configured: keyed by locale and
// effective route, rendered into a buffer on miss, stored, then written.
type Public struct {
	content  *content.Service
	renderer *render.Renderer
	pages    *cache.PageCache // may be nil
}

// NewPublic creates the public page handler group.
func NewPublic(c *content.Service, r *render.Renderer, pages *cache.PageCache) *Public {
	return &Public{content: c, renderer: r, pages: pages}
}

// serve renders a page through the page cache. build assembles the
// PageData for the active locale; it is skipped entirely on a cache hit.
func (h *Public) serve(w http.ResponseWriter, r *http.Request, tmpl string, build func(loc locale.Locale) (*render.PageData, int)) {
	loc := locale.FromCtx(r.Context())
	key := cache.PageKey(loc.String(), r.URL.Path)

	if h.pages != nil {
		if html, ok := h.pages.Get(r.Context(), key); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(html)
			return
		}
	}

	data, status := build(loc)
	if data == nil {
		http.NotFound(w, r)
		return
	}
	data.Locale = loc
	data.Route = r.URL.Path
	data.Footer = h.content.Footer(r.Context())

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, tmpl, data); err != nil {
		slog.Error("render page failed", "template", tmpl, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if h.pages != nil && status == http.StatusOK {
		h.pages.Set(r.Context(), key, buf.Bytes())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// Home renders the landing page: hero, categories, recent products.
func (h *Public) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "home", func(loc locale.Locale) (*render.PageData, int) {
		products := h.content.Products(r.Context())
		if len(products) > 8 {
			products = products[:8]
		}
		return &render.PageData{
			Title: "Mekong Doors",
			Data: map[string]any{
				"Hero":       h.content.Hero(r.Context()),
				"Categories": h.content.Categories(r.Context()),
				"Products":   products,
			},
		}, http.StatusOK
	})
}

// catalogGroup is one category bucket on the products page. A nil
// Category is the trailing "Uncategorized" bucket for products whose
// category reference is missing or dangling.
type catalogGroup struct {
	Category *models.Category
	Products []models.Product
}

// groupByCategory buckets products under their categories, preserving
// category display order. Products with no resolvable category land in
// a final unnamed bucket instead of disappearing from the catalog.
func groupByCategory(categories []models.Category, products []models.Product) []catalogGroup {
	byID := make(map[uuid.UUID][]models.Product)
	var orphans []models.Product
	known := make(map[uuid.UUID]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	for _, p := range products {
		if p.CategoryID != nil && known[*p.CategoryID] {
			byID[*p.CategoryID] = append(byID[*p.CategoryID], p)
		} else {
			orphans = append(orphans, p)
		}
	}

	var groups []catalogGroup
	for i := range categories {
		c := categories[i]
		if items := byID[c.ID]; len(items) > 0 {
			groups = append(groups, catalogGroup{Category: &c, Products: items})
		}
	}
	if len(orphans) > 0 {
		groups = append(groups, catalogGroup{Products: orphans})
	}
	return groups
}

// Products renders the catalog grouped by category.
func (h *Public) Products(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "products", func(loc locale.Locale) (*render.PageData, int) {
		groups := groupByCategory(h.content.Categories(r.Context()), h.content.Products(r.Context()))
		return &render.PageData{
			Title: "Products",
			Data:  map[string]any{"Groups": groups},
		}, http.StatusOK
	})
}

// Product renders one product's detail page.
func (h *Public) Product(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.serve(w, r, "product", func(loc locale.Locale) (*render.PageData, int) {
		p := h.content.ProductByID(r.Context(), id)
		if p == nil {
			return nil, 0
		}
		return &render.PageData{
			Title: p.Name.In(loc.String()),
			Data:  map[string]any{"Product": p},
		}, http.StatusOK
	})
}

// About renders the about page. The body is Markdown, converted per
// locale at render time (the result is page-cached anyway).
func (h *Public) About(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "about", func(loc locale.Locale) (*render.PageData, int) {
		a := h.content.About(r.Context())
		if a == nil {
			return nil, 0
		}
		body, err := markdown.ToHTML(a.Body.In(loc.String()))
		if err != nil {
			slog.Error("render about markdown failed", "error", err)
		}
		return &render.PageData{
			Title: a.Title.In(loc.String()),
			Data: map[string]any{
				"About":    a,
				"BodyHTML": template.HTML(body),
			},
		}, http.StatusOK
	})
}

// Installations renders the showcase list.
func (h *Public) Installations(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "installations", func(loc locale.Locale) (*render.PageData, int) {
		return &render.PageData{
			Title: "Installations",
			Data:  map[string]any{"Installations": h.content.Installations(r.Context())},
		}, http.StatusOK
	})
}

// Installation renders one showcase post.
func (h *Public) Installation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	h.serve(w, r, "installation", func(loc locale.Locale) (*render.PageData, int) {
		in := h.content.InstallationByID(r.Context(), id)
		if in == nil {
			return nil, 0
		}
		body, err := markdown.ToHTML(in.Body.In(loc.String()))
		if err != nil {
			slog.Error("render installation markdown failed", "id", id, "error", err)
		}
		return &render.PageData{
			Title: in.Title.In(loc.String()),
			Data: map[string]any{
				"Installation": in,
				"BodyHTML":     template.HTML(body),
			},
		}, http.StatusOK
	})
}

// Contact renders the quote-request form page.
func (h *Public) Contact(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "contact", func(loc locale.Locale) (*render.PageData, int) {
		return &render.PageData{Title: "Contact"}, http.StatusOK
	})
}
