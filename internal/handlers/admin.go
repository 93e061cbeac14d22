// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"mekongdoors/internal/content"
	"mekongdoors/internal/models"
)

// Admin serves the back-office content API. Authorization (session with
// 2FA, or a whitelisted bearer token) is enforced by the router; every
// handler here can assume an authenticated admin.
type Admin struct {
	content *content.Service
}

// NewAdmin creates the admin handler group.
func NewAdmin(c *content.Service) *Admin {
	return &Admin{content: c}
}

// pathID parses the {id} URL parameter. Writes a 400 and returns false
// when it is not a UUID.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// --- Categories ---

// ListCategories returns all categories in display order.
func (h *Admin) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.content.Categories(r.Context()))
}

// CreateCategory inserts a new category.
func (h *Admin) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.content.CreateCategory(r.Context(), &c)
	if err != nil {
		slog.Error("create category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not create category")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateCategory modifies an existing category.
func (h *Admin) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	c.ID = id
	if err := h.content.UpdateCategory(r.Context(), &c); err != nil {
		slog.Error("update category failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update category")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteCategory removes a category. Its products become uncategorized.
func (h *Admin) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteCategory(r.Context(), id); err != nil {
		slog.Error("delete category failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete category")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

// ReorderCategories rewrites the category display order to match the
// submitted id list. The whole reorder is one transaction: either every
// category gets its new position or none does.
func (h *Admin) ReorderCategories(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil || len(req.IDs) == 0 {
		respondError(w, http.StatusBadRequest, "Missing ids")
		return
	}
	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid id in list")
			return
		}
		ids = append(ids, id)
	}
	if err := h.content.ReorderCategories(r.Context(), ids); err != nil {
		slog.Error("reorder categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not reorder categories")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- Products ---

// CreateProduct inserts a new catalog item.
func (h *Admin) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.content.CreateProduct(r.Context(), &p)
	if err != nil {
		slog.Error("create product failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not create product")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateProduct modifies an existing catalog item.
func (h *Admin) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p.ID = id
	if err := h.content.UpdateProduct(r.Context(), &p); err != nil {
		slog.Error("update product failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteProduct removes a catalog item.
func (h *Admin) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteProduct(r.Context(), id); err != nil {
		slog.Error("delete product failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete product")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- Installations ---

// ListInstallations returns all showcase posts, newest first.
func (h *Admin) ListInstallations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.content.Installations(r.Context()))
}

// CreateInstallation inserts a new showcase post.
func (h *Admin) CreateInstallation(w http.ResponseWriter, r *http.Request) {
	var in models.Installation
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	created, err := h.content.CreateInstallation(r.Context(), &in)
	if err != nil {
		slog.Error("create installation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not create installation")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateInstallation modifies an existing showcase post.
func (h *Admin) UpdateInstallation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in models.Installation
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in.ID = id
	if err := h.content.UpdateInstallation(r.Context(), &in); err != nil {
		slog.Error("update installation failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not update installation")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// DeleteInstallation removes a showcase post.
func (h *Admin) DeleteInstallation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteInstallation(r.Context(), id); err != nil {
		slog.Error("delete installation failed", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Could not delete installation")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- Singleton sections ---

// PutAbout replaces the about-page content.
func (h *Admin) PutAbout(w http.ResponseWriter, r *http.Request) {
	var a models.AboutContent
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.content.SetAbout(r.Context(), &a); err != nil {
		slog.Error("set about failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save about section")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PutFooter replaces the footer content.
func (h *Admin) PutFooter(w http.ResponseWriter, r *http.Request) {
	var f models.FooterContent
	if err := decodeJSON(r, &f); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.content.SetFooter(r.Context(), &f); err != nil {
		slog.Error("set footer failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save footer section")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PutHero replaces the hero content.
func (h *Admin) PutHero(w http.ResponseWriter, r *http.Request) {
	var hc models.HeroContent
	if err := decodeJSON(r, &hc); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.content.SetHero(r.Context(), &hc); err != nil {
		slog.Error("set hero failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save hero section")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// --- Messages ---

// ListMessages returns quote requests, newest first, straight from the
// store — operators want the live inbox, not a cached view.
func (h *Admin) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.content.Messages(r.Context())
	if err != nil {
		slog.Error("list messages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not load messages")
		return
	}
	respondJSON(w, http.StatusOK, msgs)
}
