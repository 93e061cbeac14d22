// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		loc      Locale
		route    string
		prefixed bool
	}{
		{"empty path", "", Khmer, "/", false},
		{"bare root", "/", Khmer, "/", false},
		{"khmer root", "/kh", Khmer, "/", true},
		{"english root", "/en", English, "/", true},
		{"khmer page", "/kh/products", Khmer, "/products", true},
		{"english nested", "/en/products/abc-123", English, "/products/abc-123", true},
		{"no prefix", "/products", Khmer, "/products", false},
		{"unsupported language code passes through", "/fr/products", Khmer, "/fr/products", false},
		{"locale-looking segment deeper in path", "/products/en", Khmer, "/products/en", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, route, prefixed := Resolve(tt.path)
			if loc != tt.loc {
				t.Errorf("locale = %q, want %q", loc, tt.loc)
			}
			if route != tt.route {
				t.Errorf("route = %q, want %q", route, tt.route)
			}
			if prefixed != tt.prefixed {
				t.Errorf("prefixed = %v, want %v", prefixed, tt.prefixed)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	if got := Prefix(English, "/products"); got != "/en/products" {
		t.Errorf("Prefix = %q, want /en/products", got)
	}
	if got := Prefix(Khmer, "/"); got != "/kh" {
		t.Errorf("Prefix root = %q, want /kh", got)
	}
	if got := Prefix(Khmer, ""); got != "/kh" {
		t.Errorf("Prefix empty = %q, want /kh", got)
	}
}

func TestContentKey(t *testing.T) {
	if got := Khmer.ContentKey(); got != "km" {
		t.Errorf("Khmer content key = %q, want km", got)
	}
	if got := English.ContentKey(); got != "en" {
		t.Errorf("English content key = %q, want en", got)
	}
}

func TestMiddlewareRootRedirect(t *testing.T) {
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not run for bare root")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTemporaryRedirect {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusTemporaryRedirect)
	}
	if loc := rec.Header().Get("Location"); loc != "/kh" {
		t.Errorf("Location = %q, want /kh", loc)
	}
}

func TestMiddlewareRewritesPrefixedPath(t *testing.T) {
	var sawPath string
	var sawLocale Locale
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawPath = r.URL.Path
		sawLocale = FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/en/products", nil))

	if sawPath != "/products" {
		t.Errorf("downstream path = %q, want /products", sawPath)
	}
	if sawLocale != English {
		t.Errorf("downstream locale = %q, want en", sawLocale)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "en" {
		t.Errorf("locale cookie = %v, want en", cookie)
	}
}

func TestMiddlewareLeavesUnsupportedSegment(t *testing.T) {
	var sawPath string
	var sawLocale Locale
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawPath = r.URL.Path
		sawLocale = FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr/products", nil))

	if sawPath != "/fr/products" {
		t.Errorf("downstream path = %q, want /fr/products untouched", sawPath)
	}
	if sawLocale != Default {
		t.Errorf("downstream locale = %q, want default", sawLocale)
	}
}

func TestMiddlewareSkipsAPIAndInfra(t *testing.T) {
	for _, path := range []string{"/api/messages", "/static/css/site.css", "/health", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			var sawPath string
			handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawPath = r.URL.Path
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			if sawPath != path {
				t.Errorf("downstream path = %q, want %q", sawPath, path)
			}
			for _, c := range rec.Result().Cookies() {
				if c.Name == CookieName {
					t.Error("locale cookie set on skipped route")
				}
			}
		})
	}
}

func TestFromCtxDefault(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := FromCtx(r.Context()); got != Default {
		t.Errorf("FromCtx without middleware = %q, want default", got)
	}
}
