// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mekongdoors/internal/cache"
	"mekongdoors/internal/content"
	"mekongdoors/internal/models"
)

func newAdminTest(categories *stubCategoryStore) (*Admin, chi.Router) {
	svc := content.NewService(cache.NewContentCache(nil), nil, nil,
		categories, &stubProductStore{}, &stubInstallationStore{}, &stubSectionStore{}, &stubMessageStore{})
	h := NewAdmin(svc)

	r := chi.NewRouter()
	r.Get("/categories", h.ListCategories)
	r.Post("/categories", h.CreateCategory)
	r.Post("/categories/reorder", h.ReorderCategories)
	r.Put("/categories/{id}", h.UpdateCategory)
	r.Delete("/categories/{id}", h.DeleteCategory)
	return h, r
}

func TestCreateCategory(t *testing.T) {
	categories := &stubCategoryStore{}
	_, r := newAdminTest(categories)

	body, _ := json.Marshal(models.Category{
		Name: models.LocalizedText{EN: "Doors", KM: "ទ្វារ"},
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if len(categories.items) != 1 {
		t.Fatalf("stored categories = %d", len(categories.items))
	}
	// An omitted sort order is assigned, not left at zero.
	if categories.items[0].SortOrder == 0 {
		t.Error("sort order was not assigned")
	}
}

func TestReorderCategoriesValidation(t *testing.T) {
	_, r := newAdminTest(&stubCategoryStore{})

	t.Run("empty ids", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories/reorder",
			bytes.NewReader([]byte(`{"ids":[]}`))))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories/reorder",
			bytes.NewReader([]byte(`{"ids":["nope"]}`))))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("valid", func(t *testing.T) {
		payload, _ := json.Marshal(map[string][]string{
			"ids": {uuid.NewString(), uuid.NewString()},
		})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/categories/reorder", bytes.NewReader(payload)))
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, body %s", rec.Code, rec.Body)
		}
	})
}

func TestUpdateCategoryBadID(t *testing.T) {
	_, r := newAdminTest(&stubCategoryStore{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/categories/banana",
		bytes.NewReader([]byte(`{}`))))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
