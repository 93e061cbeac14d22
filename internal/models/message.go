// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteMessage is a quote request submitted from the public contact flow.
// The record is persisted regardless of whether the Telegram notification
// succeeds; Notified records the outcome for operators.
type QuoteMessage struct {
	ID           uuid.UUID `json:"id"`
	CustomerName string    `json:"customer_name"`
	PhoneNumber  string    `json:"phone_number"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	Notified     bool      `json:"notified"`
	CreatedAt    time.Time `json:"created_at"`
}
