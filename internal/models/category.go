// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the catalog. Display order is governed by
// SortOrder; the reorder operation rewrites SortOrder for every category
// so that positions stay dense.
type Category struct {
	ID          uuid.UUID     `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	SortOrder   int           `json:"sort_order"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// ProductCount is populated by list queries for the admin API.
	ProductCount int `json:"product_count"`
}
