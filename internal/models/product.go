// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single catalog item. CategoryID is a soft reference — no
// foreign key enforces it, and a dangling value is tolerated (the public
// catalog renders such products as uncategorized).
type Product struct {
	ID          uuid.UUID     `json:"id"`
	Code        string        `json:"code"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Price       float64       `json:"price"`
	CategoryID  *uuid.UUID    `json:"category_id"`
	ImageURL    string        `json:"image_url"`
	Specs       SpecMap       `json:"specs"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
