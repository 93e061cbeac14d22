// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content is the cached accessor for every content collection.
// Reads are served from a process-wide tag cache with a fixed
// revalidation window and degrade to empty results when the store
// misbehaves; writes go straight to the store and synchronously
// invalidate the collection's tag (and the rendered-page cache) before
// reporting success, so the next read observes the write.
//
// Callers cannot distinguish "collection is empty" from "fetch failed" —
// both come back as an empty slice or nil. That is a deliberate
// availability trade-off for a content site: slightly stale or briefly
// missing read data is tolerable, a visible error page is not.
package content

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mekongdoors/internal/cache"
	"mekongdoors/internal/metrics"
	"mekongdoors/internal/models"
)

// Revalidation windows. List collections share one window; the
// product-detail path uses a longer one (detail pages change less often
// than lists grow). Both are carried as constants, not derived.
const (
	listRevalidate   = 60 * time.Second
	detailRevalidate = 120 * time.Second
)

// Cache tags, one per collection.
const (
	TagCategories    = "categories"
	TagProducts      = "products"
	TagInstallations = "installations"
	TagAbout         = "about"
	TagFooter        = "footer"
	TagHero          = "hero"

	tagProductPrefix = "product:"
)

// CategoryStore is the category persistence surface the service needs.
type CategoryStore interface {
	ListOrdered() ([]models.Category, error)
	ListUnordered() ([]models.Category, error)
	FindByID(id uuid.UUID) (*models.Category, error)
	Create(c *models.Category) (*models.Category, error)
	Update(c *models.Category) error
	Delete(id uuid.UUID) error
	Reorder(ids []uuid.UUID) error
	NextSortOrder() (int, error)
}

// ProductStore is the product persistence surface the service needs.
type ProductStore interface {
	ListOrdered() ([]models.Product, error)
	ListUnordered() ([]models.Product, error)
	FindByID(id uuid.UUID) (*models.Product, error)
	Create(p *models.Product) (*models.Product, error)
	Update(p *models.Product) error
	Delete(id uuid.UUID) error
}

// InstallationStore is the installation persistence surface the service needs.
type InstallationStore interface {
	ListOrdered() ([]models.Installation, error)
	ListUnordered() ([]models.Installation, error)
	FindByID(id uuid.UUID) (*models.Installation, error)
	Create(in *models.Installation) (*models.Installation, error)
	Update(in *models.Installation) error
	Delete(id uuid.UUID) error
}

// SectionStore is the singleton-section persistence surface.
type SectionStore interface {
	About() (*models.AboutContent, error)
	SetAbout(a *models.AboutContent) error
	Footer() (*models.FooterContent, error)
	SetFooter(f *models.FooterContent) error
	Hero() (*models.HeroContent, error)
	SetHero(h *models.HeroContent) error
}

// MessageStore is the quote-message persistence surface.
type MessageStore interface {
	Create(m *models.QuoteMessage) (*models.QuoteMessage, error)
	MarkNotified(id uuid.UUID) error
	List() ([]models.QuoteMessage, error)
}

// Service wires the stores to the tag cache. pages and mx may be nil
// (tests, or a deployment without Valkey/metrics).
type Service struct {
	cache         *cache.ContentCache
	pages         *cache.PageCache
	mx            *metrics.Metrics
	categories    CategoryStore
	products      ProductStore
	installations InstallationStore
	sections      SectionStore
	messages      MessageStore
}

// NewService creates the content accessor.
func NewService(
	c *cache.ContentCache,
	pages *cache.PageCache,
	mx *metrics.Metrics,
	categories CategoryStore,
	products ProductStore,
	installations InstallationStore,
	sections SectionStore,
	messages MessageStore,
) *Service {
	return &Service{
		cache:         c,
		pages:         pages,
		mx:            mx,
		categories:    categories,
		products:      products,
		installations: installations,
		sections:      sections,
		messages:      messages,
	}
}

// cached runs the tag cache for one collection and records hit/miss
// metrics. compute must return the zero value it wants served on total
// failure wrapped as the error path — the caller converts.
func (s *Service) cached(tag string, ttl time.Duration, compute func() (any, error)) (any, error) {
	computed := false
	v, err := s.cache.GetOrCompute(tag, ttl, func() (any, error) {
		computed = true
		return compute()
	})
	if s.mx != nil {
		s.mx.ObserveCacheRead(tag, !computed)
	}
	return v, err
}

// listWithFallback is the shared read policy for list collections: try
// the ordered query, retry unordered on failure, and let the caller
// swallow whatever error remains.
func listWithFallback[T any](collection string, ordered, unordered func() ([]T, error)) ([]T, error) {
	items, err := ordered()
	if err != nil {
		slog.Warn("ordered query failed, falling back to unordered fetch",
			"collection", collection, "error", err)
		items, err = unordered()
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Categories returns the category list in display order. Empty on failure.
func (s *Service) Categories(ctx context.Context) []models.Category {
	v, err := s.cached(TagCategories, listRevalidate, func() (any, error) {
		return listWithFallback(TagCategories, s.categories.ListOrdered, s.categories.ListUnordered)
	})
	if err != nil {
		slog.Error("fetch categories failed", "error", err)
		return nil
	}
	items, _ := v.([]models.Category)
	return items
}

// Products returns the product list, newest first. Empty on failure.
func (s *Service) Products(ctx context.Context) []models.Product {
	v, err := s.cached(TagProducts, listRevalidate, func() (any, error) {
		return listWithFallback(TagProducts, s.products.ListOrdered, s.products.ListUnordered)
	})
	if err != nil {
		slog.Error("fetch products failed", "error", err)
		return nil
	}
	items, _ := v.([]models.Product)
	return items
}

// ProductByID returns one product, cached under its own tag with the
// longer detail window. Nil when missing or on failure.
func (s *Service) ProductByID(ctx context.Context, id uuid.UUID) *models.Product {
	v, err := s.cached(tagProductPrefix+id.String(), detailRevalidate, func() (any, error) {
		return s.products.FindByID(id)
	})
	if err != nil {
		slog.Error("fetch product failed", "id", id, "error", err)
		return nil
	}
	p, _ := v.(*models.Product)
	return p
}

// Installations returns the installation posts, newest first. Empty on failure.
func (s *Service) Installations(ctx context.Context) []models.Installation {
	v, err := s.cached(TagInstallations, listRevalidate, func() (any, error) {
		return listWithFallback(TagInstallations, s.installations.ListOrdered, s.installations.ListUnordered)
	})
	if err != nil {
		slog.Error("fetch installations failed", "error", err)
		return nil
	}
	items, _ := v.([]models.Installation)
	return items
}

// InstallationByID returns one installation post. Nil when missing or on failure.
func (s *Service) InstallationByID(ctx context.Context, id uuid.UUID) *models.Installation {
	// Installation detail is uncached: pages cache the rendered HTML
	// already and showcase posts see very little traffic.
	in, err := s.installations.FindByID(id)
	if err != nil {
		slog.Error("fetch installation failed", "id", id, "error", err)
		return nil
	}
	return in
}

// About returns the about-page content. Nil when unset or on failure.
func (s *Service) About(ctx context.Context) *models.AboutContent {
	v, err := s.cached(TagAbout, listRevalidate, func() (any, error) {
		return s.sections.About()
	})
	if err != nil {
		slog.Error("fetch about failed", "error", err)
		return nil
	}
	a, _ := v.(*models.AboutContent)
	return a
}

// Footer returns the footer content. Nil when unset or on failure.
func (s *Service) Footer(ctx context.Context) *models.FooterContent {
	v, err := s.cached(TagFooter, listRevalidate, func() (any, error) {
		return s.sections.Footer()
	})
	if err != nil {
		slog.Error("fetch footer failed", "error", err)
		return nil
	}
	f, _ := v.(*models.FooterContent)
	return f
}

// Hero returns the homepage hero content. Nil when unset or on failure.
func (s *Service) Hero(ctx context.Context) *models.HeroContent {
	v, err := s.cached(TagHero, listRevalidate, func() (any, error) {
		return s.sections.Hero()
	})
	if err != nil {
		slog.Error("fetch hero failed", "error", err)
		return nil
	}
	h, _ := v.(*models.HeroContent)
	return h
}
