// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Installation is a showcase post for completed installation work.
// Body holds Markdown source in both languages.
type Installation struct {
	ID        uuid.UUID     `json:"id"`
	Title     LocalizedText `json:"title"`
	Body      LocalizedText `json:"body"`
	ImageURL  string        `json:"image_url"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
