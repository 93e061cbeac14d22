// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/messages", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if do("1.2.3.4") != http.StatusOK || do("1.2.3.4") != http.StatusOK {
		t.Fatal("requests within limit rejected")
	}
	if do("1.2.3.4") != http.StatusTooManyRequests {
		t.Error("request over limit allowed")
	}
	// Another client is unaffected.
	if do("5.6.7.8") != http.StatusOK {
		t.Error("independent client rejected")
	}
}

func TestRateLimiterWindowReset(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.allow("k") {
		t.Fatal("first request rejected")
	}
	if rl.allow("k") {
		t.Fatal("second request inside window allowed")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.allow("k") {
		t.Error("request after window reset rejected")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"x-forwarded-for", map[string]string{"X-Forwarded-For": "1.1.1.1, 2.2.2.2"}, "9.9.9.9:1234", "1.1.1.1"},
		{"x-real-ip", map[string]string{"X-Real-IP": "3.3.3.3"}, "9.9.9.9:1234", "3.3.3.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("clientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSecureHeaders(t *testing.T) {
	handler := SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got == "" {
		t.Error("X-Frame-Options missing")
	}
	csp := rec.Header().Get("Content-Security-Policy")
	if !strings.Contains(csp, "default-src 'self'") {
		t.Errorf("CSP = %q, want a self default-src", csp)
	}
	if !strings.Contains(csp, "img-src 'self' https:") {
		t.Errorf("CSP = %q, want remote HTTPS images allowed", csp)
	}
	if got := rec.Header().Get("Permissions-Policy"); got == "" {
		t.Error("Permissions-Policy missing")
	}
}
