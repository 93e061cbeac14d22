// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store_test

import (
	"testing"

	"mekongdoors/internal/models"
	"mekongdoors/internal/store"
)

// saveFooter snapshots the footer row and registers a cleanup that puts
// it back, so section tests leave the singleton rows as they found them.
func saveFooter(t *testing.T, s *store.SectionStore) {
	t.Helper()
	prev, err := s.Footer()
	if err != nil {
		t.Fatalf("read footer before test: %v", err)
	}
	t.Cleanup(func() {
		if prev != nil {
			s.SetFooter(prev)
		}
	})
}

func TestSectionStoreUpsert(t *testing.T) {
	db := testDB(t)
	s := store.NewSectionStore(db)
	saveFooter(t, s)

	first := &models.FooterContent{
		CompanyName: models.LocalizedText{EN: "Test Doors Co", KM: "ក្រុមហ៊ុនទ្វារ"},
		Phone:       "+855 10 000 001",
	}
	if err := s.SetFooter(first); err != nil {
		t.Fatalf("SetFooter: %v", err)
	}

	got, err := s.Footer()
	if err != nil {
		t.Fatalf("Footer: %v", err)
	}
	if got == nil {
		t.Fatal("footer nil after write")
	}
	if got.CompanyName.KM != first.CompanyName.KM || got.Phone != first.Phone {
		t.Errorf("footer did not round-trip: %+v", got)
	}

	// A second write must replace, not duplicate or error — the row is
	// keyed by section name.
	second := &models.FooterContent{
		CompanyName: models.LocalizedText{EN: "Test Doors Co"},
		Phone:       "+855 10 000 002",
	}
	if err := s.SetFooter(second); err != nil {
		t.Fatalf("SetFooter upsert: %v", err)
	}

	got, err = s.Footer()
	if err != nil {
		t.Fatalf("Footer after upsert: %v", err)
	}
	if got.Phone != second.Phone {
		t.Errorf("phone = %q, want the second write to win", got.Phone)
	}

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM site_sections WHERE name = $1", models.SectionFooter,
	).Scan(&count); err != nil {
		t.Fatalf("count footer rows: %v", err)
	}
	if count != 1 {
		t.Errorf("footer rows = %d, want exactly 1", count)
	}
}

func TestSectionStoreUnsetReturnsNil(t *testing.T) {
	db := testDB(t)
	s := store.NewSectionStore(db)
	saveFooter(t, s)

	if _, err := db.Exec("DELETE FROM site_sections WHERE name = $1", models.SectionFooter); err != nil {
		t.Fatalf("clear footer row: %v", err)
	}

	got, err := s.Footer()
	if err != nil {
		t.Fatalf("Footer: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for never-written section, got %+v", got)
	}
}
