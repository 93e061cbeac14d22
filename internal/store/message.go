// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"mekongdoors/internal/models"
)

// MessageStore persists quote requests from the public contact flow.
type MessageStore struct {
	db *sql.DB
}

// NewMessageStore returns a new MessageStore.
func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

const messageColumns = `id, customer_name, phone_number, product_id, product_name, product_image, notified, created_at`

// Create inserts a quote message and returns it with its generated ID.
func (s *MessageStore) Create(m *models.QuoteMessage) (*models.QuoteMessage, error) {
	row := s.db.QueryRow(`
		INSERT INTO messages (customer_name, phone_number, product_id, product_name, product_image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+messageColumns,
		m.CustomerName, m.PhoneNumber, m.ProductID, m.ProductName, m.ProductImage,
	)
	var out models.QuoteMessage
	err := row.Scan(
		&out.ID, &out.CustomerName, &out.PhoneNumber, &out.ProductID,
		&out.ProductName, &out.ProductImage, &out.Notified, &out.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return &out, nil
}

// MarkNotified records that the Telegram notification went out.
func (s *MessageStore) MarkNotified(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE messages SET notified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark message notified: %w", err)
	}
	return nil
}

// List returns all quote messages, newest first, for the admin API.
func (s *MessageStore) List() ([]models.QuoteMessage, error) {
	rows, err := s.db.Query(`SELECT ` + messageColumns + ` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var items []models.QuoteMessage
	for rows.Next() {
		var m models.QuoteMessage
		err := rows.Scan(
			&m.ID, &m.CustomerName, &m.PhoneNumber, &m.ProductID,
			&m.ProductName, &m.ProductImage, &m.Notified, &m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
