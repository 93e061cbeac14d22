// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// bucket counts requests from one client within the current window.
type bucket struct {
	count       int
	windowStart time.Time
}

// RateLimiter provides per-IP rate limiting using a fixed window. It is
// applied to the public quote-request endpoint, where a sliding window's
// extra precision buys nothing.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*bucket
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter that allows limit requests per window.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
}

// allow checks whether the given key is within the rate limit. Expired
// buckets are reset in place and pruned opportunistically, so no
// background cleanup goroutine is needed.
func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.clients[key]
	if !ok || now.Sub(b.windowStart) >= rl.window {
		// Prune stale entries while we hold the lock anyway.
		if len(rl.clients) > 1024 {
			for k, e := range rl.clients {
				if now.Sub(e.windowStart) >= rl.window {
					delete(rl.clients, k)
				}
			}
		}
		rl.clients[key] = &bucket{count: 1, windowStart: now}
		return true
	}

	if b.count >= rl.limit {
		return false
	}
	b.count++
	return true
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The leftmost entry is the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
