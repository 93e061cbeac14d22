// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mekongdoors/internal/models"
)

// CategoryStore manages catalog categories.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, description, sort_order, created_at, updated_at`

func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Description, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListOrdered returns all categories ordered for display (sort_order,
// then name for ties), with product counts.
func (s *CategoryStore) ListOrdered() ([]models.Category, error) {
	return s.list(`
		SELECT c.id, c.name, c.description, c.sort_order, c.created_at, c.updated_at,
		       COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.sort_order, c.created_at
	`)
}

// ListUnordered returns all categories with no ORDER BY clause. Used as
// the availability fallback when the ordered query fails.
func (s *CategoryStore) ListUnordered() ([]models.Category, error) {
	return s.list(`
		SELECT c.id, c.name, c.description, c.sort_order, c.created_at, c.updated_at,
		       COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id
	`)
}

func (s *CategoryStore) list(query string) ([]models.Category, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		err := rows.Scan(
			&c.ID, &c.Name, &c.Description, &c.SortOrder,
			&c.CreatedAt, &c.UpdatedAt, &c.ProductCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name, description, sort_order)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		c.Name, c.Description, c.SortOrder,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies an existing category.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, description = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $4
	`, c.Name, c.Description, c.SortOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Products keep their category_id —
// it is a soft reference — and render as uncategorized afterwards.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// Reorder rewrites sort_order for the given ids according to their
// position in the slice, inside a single transaction. Either every
// category takes its new position or none does — a partial reorder
// would corrupt the display order.
func (s *CategoryStore) Reorder(ids []uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		UPDATE categories SET sort_order = $1, updated_at = $2
		WHERE id = $3`)
	if err != nil {
		return fmt.Errorf("prepare reorder: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for pos, id := range ids {
		if _, err := stmt.Exec(pos, now, id); err != nil {
			return fmt.Errorf("reorder category %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// NextSortOrder returns the sort_order for a category appended at the end.
func (s *CategoryStore) NextSortOrder() (int, error) {
	var maxOrder sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(sort_order) FROM categories`).Scan(&maxOrder); err != nil {
		return 0, err
	}
	if maxOrder.Valid {
		return int(maxOrder.Int64) + 1, nil
	}
	return 0, nil
}
