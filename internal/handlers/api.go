// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/content"
	"mekongdoors/internal/models"
)

// QuoteNotifier is the outbound notification surface the public API
// needs. Satisfied by notify.Telegram; tests inject fakes.
type QuoteNotifier interface {
	Enabled() bool
	QuoteRequest(ctx context.Context, customerName, phoneNumber, productName, productID string) error
}

// API serves the public JSON endpoints.
type API struct {
	content   *content.Service
	notifier  QuoteNotifier
	whitelist auth.Whitelist
}

// NewAPI creates the public API handler group.
func NewAPI(c *content.Service, n QuoteNotifier, w auth.Whitelist) *API {
	return &API{content: c, notifier: n, whitelist: w}
}

type createMessageRequest struct {
	CustomerName string `json:"customerName"`
	PhoneNumber  string `json:"phoneNumber"`
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	ProductImage string `json:"productImage"`
}

// CreateMessage accepts a quote request from the contact form. Only the
// phone number is required; an anonymous submission is stored under
// "Not provided". The record is persisted first; the Telegram
// notification is attempted afterwards and its failure only shows up as
// ok=false — a down notifier must never lose a customer lead.
func (h *API) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	if req.PhoneNumber == "" {
		respondError(w, http.StatusBadRequest, "Missing phone number")
		return
	}
	if req.CustomerName == "" {
		req.CustomerName = "Not provided"
	}

	// The form submits the product name alongside the id; fill it from
	// the catalog when only the id was given.
	if req.ProductName == "" && req.ProductID != "" {
		if id, err := uuid.Parse(req.ProductID); err == nil {
			if p := h.content.ProductByID(r.Context(), id); p != nil {
				req.ProductName = p.Name.In("en")
				req.ProductImage = p.ImageURL
			}
		}
	}

	msg, err := h.content.CreateMessage(r.Context(), &models.QuoteMessage{
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		ProductID:    req.ProductID,
		ProductName:  req.ProductName,
		ProductImage: req.ProductImage,
	})
	if err != nil {
		slog.Error("persist quote message failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not save message")
		return
	}

	ok := false
	if h.notifier != nil && h.notifier.Enabled() {
		if err := h.notifier.QuoteRequest(r.Context(), msg.CustomerName, msg.PhoneNumber, msg.ProductName, msg.ProductID); err != nil {
			slog.Warn("telegram notification failed", "message_id", msg.ID, "error", err)
		} else {
			ok = true
			if err := h.content.MarkMessageNotified(r.Context(), msg.ID); err != nil {
				slog.Warn("mark message notified failed", "message_id", msg.ID, "error", err)
			}
		}
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"ok":        ok,
		"messageId": msg.ID,
	})
}

type adminCheckRequest struct {
	Email string `json:"email"`
}

// AdminCheck reports whether an email is on the admin whitelist. Used
// by the back-office login form before prompting for a password.
func (h *API) AdminCheck(w http.ResponseWriter, r *http.Request) {
	var req adminCheckRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Email) == "" {
		respondError(w, http.StatusBadRequest, "Missing email")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{
		"allowed": h.whitelist.Allowed(req.Email),
	})
}

// ProductsGet returns the full product list as JSON, served through the
// same cached accessor as the HTML catalog.
func (h *API) ProductsGet(w http.ResponseWriter, r *http.Request) {
	products := h.content.Products(r.Context())
	if products == nil {
		products = []models.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// ProductsAdmin creates a product via bearer-token auth, for headless
// admin tooling that has no session. Auth is enforced by the router; by
// the time this runs the caller is a whitelisted admin.
func (h *API) ProductsAdmin(w http.ResponseWriter, r *http.Request) {
	var p models.Product
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusInternalServerError, "Invalid product payload")
		return
	}
	if p.Name.EN == "" && p.Name.KM == "" {
		respondError(w, http.StatusInternalServerError, "Product name is required")
		return
	}
	created, err := h.content.CreateProduct(r.Context(), &p)
	if err != nil {
		slog.Error("create product failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not create product")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"product": created,
	})
}
