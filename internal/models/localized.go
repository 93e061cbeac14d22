// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the typed records for every content collection.
// Bilingual fields and product spec maps are stored as JSONB columns and
// implement driver.Valuer / sql.Scanner so stores can read and write them
// without per-site shape checking.
package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LocalizedText holds one piece of text in both site languages.
// The Khmer content key is "km" (ISO 639-1) even though the URL locale
// code is "kh" — both spellings are accepted by In.
type LocalizedText struct {
	EN string `json:"en"`
	KM string `json:"km"`
}

// In returns the text for the given locale code ("en", "kh" or "km"),
// falling back to the other language when the requested one is empty.
func (t LocalizedText) In(code string) string {
	if code == "en" {
		if t.EN != "" {
			return t.EN
		}
		return t.KM
	}
	if t.KM != "" {
		return t.KM
	}
	return t.EN
}

// Value marshals the text pair to JSONB.
func (t LocalizedText) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan unmarshals a JSONB column into the text pair.
func (t *LocalizedText) Scan(src any) error {
	return scanJSON(src, t, "localized text")
}

// SpecEntry is a single product specification row: a bilingual label
// paired with a bilingual value (e.g. "Material" → "Solid teak").
type SpecEntry struct {
	Label LocalizedText `json:"label"`
	Value LocalizedText `json:"value"`
}

// SpecMap maps a stable spec key to its entry. Stored as one JSONB column.
type SpecMap map[string]SpecEntry

// Value marshals the spec map to JSONB. A nil map is stored as {}.
func (m SpecMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan unmarshals a JSONB column into the spec map.
func (m *SpecMap) Scan(src any) error {
	return scanJSON(src, m, "spec map")
}

// scanJSON handles the []byte / string forms the driver may hand us.
func scanJSON(src, dst any, what string) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("scan %s: unsupported type %T", what, src)
	}
}
