// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoverer(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	t.Run("page route gets plain-text 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Recoverer(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Internal Server Error") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("api route gets JSON 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		Recoverer(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body is not JSON: %q", rec.Body.String())
		}
		if resp["error"] == "" {
			t.Error("error field missing from JSON body")
		}
	})

	t.Run("non-string panic value", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(42)
		}))
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})

	t.Run("pass-through without panic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ok"))
		}))
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
			t.Errorf("response = %d %q", rec.Code, rec.Body.String())
		}
	})
}
