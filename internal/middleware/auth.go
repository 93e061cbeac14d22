// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/session"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	// SessionKey is the context key for session data.
	SessionKey contextKey = "session"

	// AdminEmailKey is the context key for the authenticated admin email
	// (set by session or bearer authentication).
	AdminEmailKey contextKey = "admin_email"
)

// LoadSession retrieves the session from Valkey and stores it in the
// request context. It does NOT enforce authentication — it just loads
// the session if one exists.
func LoadSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, err := store.Get(r.Context(), r)
			if err != nil {
				// Log-free pass-through: treat as unauthenticated.
				next.ServeHTTP(w, r)
				return
			}

			if data != nil {
				ctx := context.WithValue(r.Context(), SessionKey, data)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession rejects requests without a session. Must be applied
// after LoadSession. The admin surface is a JSON API, so the response
// is a 401 body rather than a login redirect.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFromCtx(r.Context()) == nil {
			jsonError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireBearer authenticates a request with a bearer token and checks
// the token's email against the whitelist: 401 for a missing or invalid
// token, 403 for a valid token whose email is not whitelisted. The
// email lands on the context under AdminEmailKey.
func RequireBearer(issuer *auth.TokenIssuer, whitelist auth.Whitelist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, status := bearerEmail(r, issuer, whitelist)
			if status != 0 {
				if status == http.StatusUnauthorized {
					jsonError(w, status, "Missing or invalid token")
				} else {
					jsonError(w, status, "Not authorized")
				}
				return
			}
			ctx := context.WithValue(r.Context(), AdminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin grants access to the admin content API either through a
// 2FA-complete session (whose email must still be whitelisted) or a
// whitelisted bearer token. Must be applied after LoadSession.
func RequireAdmin(issuer *auth.TokenIssuer, whitelist auth.Whitelist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess := SessionFromCtx(r.Context()); sess != nil && sess.TwoFADone {
				if !whitelist.Allowed(sess.Email) {
					jsonError(w, http.StatusForbidden, "Not authorized")
					return
				}
				ctx := context.WithValue(r.Context(), AdminEmailKey, sess.Email)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			email, status := bearerEmail(r, issuer, whitelist)
			if status != 0 {
				if status == http.StatusForbidden {
					jsonError(w, status, "Not authorized")
				} else {
					jsonError(w, http.StatusUnauthorized, "Authentication required")
				}
				return
			}
			ctx := context.WithValue(r.Context(), AdminEmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerEmail extracts and verifies the Authorization bearer token.
// Returns the email and 0, or "" and the HTTP status to reject with.
func bearerEmail(r *http.Request, issuer *auth.TokenIssuer, whitelist auth.Whitelist) (string, int) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", http.StatusUnauthorized
	}
	email, err := issuer.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return "", http.StatusUnauthorized
	}
	if !whitelist.Allowed(email) {
		return "", http.StatusForbidden
	}
	return email, 0
}

// SessionFromCtx extracts the session data from the request context.
// Returns nil if no session is loaded.
func SessionFromCtx(ctx context.Context) *session.Data {
	data, _ := ctx.Value(SessionKey).(*session.Data)
	return data
}

// AdminEmailFromCtx returns the authenticated admin email, or "".
func AdminEmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(AdminEmailKey).(string)
	return email
}

// jsonError writes a minimal JSON error body. Kept here so auth
// middleware does not depend on the handlers package.
func jsonError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
