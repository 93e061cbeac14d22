// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/cache"
	"mekongdoors/internal/content"
	"mekongdoors/internal/handlers"
	"mekongdoors/internal/models"
	"mekongdoors/internal/render"
	"mekongdoors/internal/session"
	"mekongdoors/internal/store"
)

// Empty-returning fakes; route-level tests only care about status codes
// and the middleware stack, not content.

type noCategories struct{}

func (noCategories) ListOrdered() ([]models.Category, error)             { return nil, nil }
func (noCategories) ListUnordered() ([]models.Category, error)           { return nil, nil }
func (noCategories) FindByID(uuid.UUID) (*models.Category, error)        { return nil, nil }
func (noCategories) Create(c *models.Category) (*models.Category, error) { return c, nil }
func (noCategories) Update(*models.Category) error                       { return nil }
func (noCategories) Delete(uuid.UUID) error                              { return nil }
func (noCategories) Reorder([]uuid.UUID) error                           { return nil }
func (noCategories) NextSortOrder() (int, error)                         { return 1, nil }

type noProducts struct{}

func (noProducts) ListOrdered() ([]models.Product, error)            { return nil, nil }
func (noProducts) ListUnordered() ([]models.Product, error)          { return nil, nil }
func (noProducts) FindByID(uuid.UUID) (*models.Product, error)       { return nil, nil }
func (noProducts) Create(p *models.Product) (*models.Product, error) { return p, nil }
func (noProducts) Update(*models.Product) error                      { return nil }
func (noProducts) Delete(uuid.UUID) error                            { return nil }

type noInstallations struct{}

func (noInstallations) ListOrdered() ([]models.Installation, error)   { return nil, nil }
func (noInstallations) ListUnordered() ([]models.Installation, error) { return nil, nil }
func (noInstallations) FindByID(uuid.UUID) (*models.Installation, error) {
	return nil, nil
}
func (noInstallations) Create(in *models.Installation) (*models.Installation, error) {
	return in, nil
}
func (noInstallations) Update(*models.Installation) error { return nil }
func (noInstallations) Delete(uuid.UUID) error            { return nil }

type noSections struct{}

func (noSections) About() (*models.AboutContent, error)   { return nil, nil }
func (noSections) SetAbout(*models.AboutContent) error    { return nil }
func (noSections) Footer() (*models.FooterContent, error) { return nil, nil }
func (noSections) SetFooter(*models.FooterContent) error  { return nil }
func (noSections) Hero() (*models.HeroContent, error)     { return nil, nil }
func (noSections) SetHero(*models.HeroContent) error      { return nil }

type noMessages struct{}

func (noMessages) Create(m *models.QuoteMessage) (*models.QuoteMessage, error) { return m, nil }
func (noMessages) MarkNotified(uuid.UUID) error                                { return nil }
func (noMessages) List() ([]models.QuoteMessage, error)                        { return nil, nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}

	svc := content.NewService(cache.NewContentCache(nil), nil, nil,
		noCategories{}, noProducts{}, noInstallations{}, noSections{}, noMessages{})

	// The session store never gets contacted: test requests carry no
	// session cookie, so Get short-circuits before touching Valkey.
	sessions := session.NewStore(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}), false)

	admins := auth.NewWhitelist([]string{"boss@mekongdoors.com"})
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	return New(Deps{
		Public:   handlers.NewPublic(svc, renderer, nil),
		API:      handlers.NewAPI(svc, nil, admins),
		Admin:    handlers.NewAdmin(svc),
		Auth:     handlers.NewAuth(store.NewUserStore(nil), sessions, issuer, admins),
		Sessions: sessions,
		Issuer:   issuer,
		Admins:   admins,
	})
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestPublicRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		rec := get(r, "/health")
		if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
			t.Errorf("health = %d %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("root redirects to default locale", func(t *testing.T) {
		rec := get(r, "/")
		if rec.Code != http.StatusTemporaryRedirect {
			t.Fatalf("status = %d", rec.Code)
		}
		if rec.Header().Get("Location") != "/kh" {
			t.Errorf("location = %q", rec.Header().Get("Location"))
		}
	})

	t.Run("locale-prefixed home", func(t *testing.T) {
		for _, path := range []string{"/kh", "/en", "/kh/products", "/en/contact"} {
			if rec := get(r, path); rec.Code != http.StatusOK {
				t.Errorf("%s: status = %d", path, rec.Code)
			}
		}
	})

	t.Run("unsupported locale prefix 404s", func(t *testing.T) {
		if rec := get(r, "/fr/products"); rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("security headers applied", func(t *testing.T) {
		rec := get(r, "/kh")
		if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("nosniff header missing")
		}
	})
}

func TestProtectedRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("admin content API needs auth", func(t *testing.T) {
		rec := get(r, "/api/admin/categories")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("products admin needs bearer", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/products/admin", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("products admin with whitelisted token", func(t *testing.T) {
		issuer := auth.NewTokenIssuer("test-secret", time.Hour)
		token, _ := issuer.Issue("boss@mekongdoors.com")
		req := httptest.NewRequest(http.MethodPost, "/api/products/admin",
			strings.NewReader(`{"name":{"en":"Teak Door"},"price":250}`))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Errorf("status = %d, body %s", rec.Code, rec.Body)
		}
	})

	t.Run("whitelist probe is open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/check",
			strings.NewReader(`{"email":"boss@mekongdoors.com"}`)))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, body %s", rec.Code, rec.Body)
		}
	})
}
