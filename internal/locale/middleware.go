// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package locale

import (
	"net/http"
	"strings"
)

const (
	// CookieName is the cookie mirroring the resolved locale for client
	// code that cannot see the URL (e.g. a previously cached render).
	CookieName = "site_locale"

	// cookieMaxAge is one year. The cookie is a hint, not state — the
	// URL always wins — so a long lifetime is harmless.
	cookieMaxAge = 365 * 24 * 60 * 60
)

// skipPrefixes lists path prefixes the locale middleware leaves alone:
// API and infrastructure routes are never locale-prefixed.
var skipPrefixes = []string{"/api/", "/static/", "/health", "/metrics"}

// Middleware resolves the locale for every public page request. It
// redirects the bare root to the default-locale root, rewrites
// locale-prefixed paths to their effective route so downstream route
// matching never sees the prefix, stamps the locale cookie, and stores
// the locale on the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		for _, p := range skipPrefixes {
			if strings.HasPrefix(path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		// Bare root goes to the canonical default-locale root.
		if path == "/" {
			setLocaleCookie(w, Default)
			http.Redirect(w, r, "/"+Default.String(), http.StatusTemporaryRedirect)
			return
		}

		loc, route, prefixed := Resolve(path)
		setLocaleCookie(w, loc)

		if prefixed {
			// Reverse-proxy style rewrite: the browser keeps the
			// prefixed URL, route matching sees the effective route.
			r.URL.Path = route
		}

		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), loc)))
	})
}

func setLocaleCookie(w http.ResponseWriter, l Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
