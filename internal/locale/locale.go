// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package locale resolves the active site language from the request path.
// Public routes carry a locale prefix (/en/..., /kh/...); the path is the
// sole source of truth on the server. A cookie mirrors the resolved value
// for client code that cannot see the URL, but it is never authoritative.
package locale

import (
	"context"
	"strings"
)

// Locale is one of the closed set of supported site languages.
type Locale string

const (
	English Locale = "en"
	Khmer   Locale = "kh"

	// Default is the locale used when the path carries no recognizable
	// prefix. The site's primary audience is Khmer-speaking.
	Default = Khmer
)

// Supported lists every locale the resolver recognizes as a path prefix.
var Supported = []Locale{English, Khmer}

// String returns the URL path code for the locale.
func (l Locale) String() string { return string(l) }

// ContentKey returns the key used inside bilingual content fields.
// Content documents store Khmer under "km" while URLs use "kh".
func (l Locale) ContentKey() string {
	if l == Khmer {
		return "km"
	}
	return string(l)
}

// IsSupported reports whether code names a supported locale.
func IsSupported(code string) bool {
	for _, l := range Supported {
		if string(l) == code {
			return true
		}
	}
	return false
}

// Resolve splits a request path into the active locale and the effective
// route (the route as if no locale prefix existed).
//
// If the first segment is a supported locale code, that locale is active
// and the remaining segments form the effective route ("/" when nothing
// remains). Any other first segment — including unsupported language
// codes like "fr" — is NOT treated as a locale prefix: the default
// locale is active and the path passes through unchanged, so the
// unknown segment falls through to normal (likely 404) route matching.
//
// prefixed reports whether a locale prefix was actually present, which
// is what callers use to decide whether to rewrite the path.
func Resolve(path string) (loc Locale, route string, prefixed bool) {
	if path == "" || path == "/" {
		return Default, "/", false
	}

	trimmed := strings.TrimPrefix(path, "/")
	seg, rest, _ := strings.Cut(trimmed, "/")
	if !IsSupported(seg) {
		return Default, path, false
	}

	route = "/" + rest
	return Locale(seg), route, true
}

// Prefix returns the locale-prefixed form of an effective route, used by
// templates to build navigation and language-switch links.
func Prefix(l Locale, route string) string {
	if route == "" || route == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + route
}

// contextKey is unexported to keep the locale context value collision-free.
type contextKey struct{}

// WithLocale stores the resolved locale on a request context.
func WithLocale(ctx context.Context, l Locale) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromCtx returns the locale resolved for this request, or Default when
// the middleware has not run (direct handler tests, internal requests).
func FromCtx(ctx context.Context) Locale {
	if l, ok := ctx.Value(contextKey{}).(Locale); ok {
		return l
	}
	return Default
}
