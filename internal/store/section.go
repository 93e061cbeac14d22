// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"mekongdoors/internal/models"
)

// SectionStore manages the singleton site sections (about, footer, hero).
// Each section is one JSONB row in site_sections keyed by name; reads of
// a section that was never written return nil, not an error.
type SectionStore struct {
	db *sql.DB
}

// NewSectionStore returns a new SectionStore.
func NewSectionStore(db *sql.DB) *SectionStore {
	return &SectionStore{db: db}
}

// get loads and unmarshals a section payload into dst. Returns false if
// the section has never been written.
func (s *SectionStore) get(name string, dst any) (bool, error) {
	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM site_sections WHERE name = $1`, name).Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get section %s: %w", name, err)
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decode section %s: %w", name, err)
	}
	return true, nil
}

// set upserts a section payload.
func (s *SectionStore) set(name string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode section %s: %w", name, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO site_sections (name, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		name, payload, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("set section %s: %w", name, err)
	}
	return nil
}

// About returns the about-page content, or nil when unset.
func (s *SectionStore) About() (*models.AboutContent, error) {
	var a models.AboutContent
	ok, err := s.get(models.SectionAbout, &a)
	if err != nil || !ok {
		return nil, err
	}
	return &a, nil
}

// SetAbout upserts the about-page content.
func (s *SectionStore) SetAbout(a *models.AboutContent) error {
	return s.set(models.SectionAbout, a)
}

// Footer returns the footer content, or nil when unset.
func (s *SectionStore) Footer() (*models.FooterContent, error) {
	var f models.FooterContent
	ok, err := s.get(models.SectionFooter, &f)
	if err != nil || !ok {
		return nil, err
	}
	return &f, nil
}

// SetFooter upserts the footer content.
func (s *SectionStore) SetFooter(f *models.FooterContent) error {
	return s.set(models.SectionFooter, f)
}

// Hero returns the homepage hero content, or nil when unset.
func (s *SectionStore) Hero() (*models.HeroContent, error) {
	var h models.HeroContent
	ok, err := s.get(models.SectionHero, &h)
	if err != nil || !ok {
		return nil, err
	}
	return &h, nil
}

// SetHero upserts the homepage hero content.
func (s *SectionStore) SetHero(h *models.HeroContent) error {
	return s.set(models.SectionHero, h)
}
