// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package auth covers the two admin-access primitives: the configured
// email whitelist and HMAC-signed bearer tokens carrying the admin's
// email. A valid token whose email is not whitelisted is still rejected
// — the whitelist is checked on every authenticated request, not only
// at login.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Whitelist is the set of email addresses allowed into the back office.
// Matching is case-insensitive.
type Whitelist []string

// NewWhitelist normalizes a list of emails into a Whitelist.
func NewWhitelist(emails []string) Whitelist {
	w := make(Whitelist, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(strings.ToLower(e))
		if e != "" {
			w = append(w, e)
		}
	}
	return w
}

// Allowed reports whether email is on the whitelist.
func (w Whitelist) Allowed(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	for _, e := range w {
		if e == email {
			return true
		}
	}
	return false
}

const (
	tokenIssuer = "mekongdoors"

	// DefaultTokenTTL bounds how long an issued bearer token stays valid.
	DefaultTokenTTL = 24 * time.Hour
)

// TokenIssuer issues and verifies HS256 bearer tokens. The subject claim
// carries the admin email.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer with the given signing secret.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given email.
func (t *TokenIssuer) Issue(email string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning the email it carries.
func (t *TokenIssuer) Verify(tokenStr string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return t.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("verify token: %w", err)
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("verify token: missing subject")
	}
	return claims.Subject, nil
}
