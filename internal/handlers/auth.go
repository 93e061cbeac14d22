// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"mekongdoors/internal/auth"
	"mekongdoors/internal/middleware"
	"mekongdoors/internal/session"
	"mekongdoors/internal/store"
)

const totpIssuerName = "Mekong Doors"

// Auth serves the back-office login flow: password login, TOTP
// enrollment and verification, logout. A session exists after login but
// only a verified TOTP code marks it 2FA-complete and yields a bearer
// token for API clients.
type Auth struct {
	users    *store.UserStore
	sessions *session.Store
	issuer   *auth.TokenIssuer
	admins   auth.Whitelist
}

// NewAuth creates the auth handler group.
func NewAuth(users *store.UserStore, sessions *session.Store, issuer *auth.TokenIssuer, admins auth.Whitelist) *Auth {
	return &Auth{users: users, sessions: sessions, issuer: issuer, admins: admins}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and opens a session. The whitelist is
// checked before the password so a non-admin account learns nothing
// about whether its password was right.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing email or password")
		return
	}

	if !h.admins.Allowed(req.Email) {
		respondError(w, http.StatusForbidden, "Not authorized")
		return
	}

	user, err := h.users.FindByEmail(req.Email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if _, err := h.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		TwoFADone:   false,
	}); err != nil {
		slog.Error("session create failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"requires2FASetup": user.Needs2FASetup(),
		"requires2FA":      !user.Needs2FASetup(),
	})
}

// TwoFASetup generates a fresh TOTP secret for the logged-in user and
// returns it with a QR code for the authenticator app. The secret does
// not count as enrolled until the first code verifies.
func (h *Auth) TwoFASetup(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuerName,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not generate secret")
		return
	}

	if err := h.users.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("store totp secret failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not store secret")
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Could not render QR code")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"secret":     key.Secret(),
		"otpauthUrl": key.URL(),
		"qrPng":      base64.StdEncoding.EncodeToString(png),
	})
}

type twoFAVerifyRequest struct {
	Code string `json:"code"`
}

// TwoFAVerify checks a TOTP code, completes the session's 2FA and hands
// out a bearer token for API clients. The first successful code after
// setup also flips the device to enrolled.
func (h *Auth) TwoFAVerify(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		respondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req twoFAVerifyRequest
	if err := decodeJSON(r, &req); err != nil || strings.TrimSpace(req.Code) == "" {
		respondError(w, http.StatusBadRequest, "Missing code")
		return
	}

	user, err := h.users.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("2fa user lookup failed", "user_id", sess.UserID, "error", err)
		respondError(w, http.StatusInternalServerError, "Verification failed")
		return
	}
	if user.TOTPSecret == nil {
		respondError(w, http.StatusBadRequest, "2FA not set up")
		return
	}

	if !totp.Validate(strings.TrimSpace(req.Code), *user.TOTPSecret) {
		respondError(w, http.StatusUnauthorized, "Invalid code")
		return
	}

	if !user.TOTPEnabled {
		if err := h.users.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "user_id", user.ID, "error", err)
			respondError(w, http.StatusInternalServerError, "Verification failed")
			return
		}
	}

	sess.TwoFADone = true
	if err := h.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Verification failed")
		return
	}

	token, err := h.issuer.Issue(user.Email)
	if err != nil {
		slog.Error("issue token failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Verification failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
	})
}

// Logout destroys the session.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Warn("session destroy failed", "error", err)
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
