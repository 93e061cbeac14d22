// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package auth

import (
	"testing"
	"time"
)

func TestWhitelist(t *testing.T) {
	w := NewWhitelist([]string{" Boss@MekongDoors.com ", "", "second@example.com"})

	if len(w) != 2 {
		t.Fatalf("whitelist size = %d, want 2 (blank dropped)", len(w))
	}
	if !w.Allowed("boss@mekongdoors.com") {
		t.Error("lowercase lookup rejected")
	}
	if !w.Allowed("BOSS@MEKONGDOORS.COM") {
		t.Error("uppercase lookup rejected")
	}
	if w.Allowed("intruder@example.com") {
		t.Error("unknown email allowed")
	}
	if (Whitelist{}).Allowed("boss@mekongdoors.com") {
		t.Error("empty whitelist allowed someone")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue("boss@mekongdoors.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	email, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "boss@mekongdoors.com" {
		t.Errorf("email = %q", email)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _ := NewTokenIssuer("secret-a", time.Hour).Issue("boss@mekongdoors.com")

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token signed with another secret verified")
	}
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)
	token, _ := issuer.Issue("boss@mekongdoors.com")

	if _, err := issuer.Verify(token); err == nil {
		t.Error("expired token verified")
	}
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not.a.token"); err == nil {
		t.Error("garbage token verified")
	}
}
