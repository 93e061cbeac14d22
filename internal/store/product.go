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

// ProductStore manages catalog products.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, code, name, description, price, category_id, image_url, specs, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := scanner.Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Price,
		&p.CategoryID, &p.ImageURL, &p.Specs, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListOrdered returns all products, newest first.
func (s *ProductStore) ListOrdered() ([]models.Product, error) {
	return s.list(`SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`)
}

// ListUnordered returns all products with no ORDER BY clause. Used as
// the availability fallback when the ordered query fails.
func (s *ProductStore) ListUnordered() ([]models.Product, error) {
	return s.list(`SELECT ` + productColumns + ` FROM products`)
}

func (s *ProductStore) list(query string) ([]models.Product, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var items []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a product by ID. Returns nil if not found.
func (s *ProductStore) FindByID(id uuid.UUID) (*models.Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find product by id: %w", err)
	}
	return p, nil
}

// Create inserts a new product and returns it.
func (s *ProductStore) Create(p *models.Product) (*models.Product, error) {
	row := s.db.QueryRow(`
		INSERT INTO products (code, name, description, price, category_id, image_url, specs)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		p.Code, p.Name, p.Description, p.Price, p.CategoryID, p.ImageURL, p.Specs,
	)
	result, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return result, nil
}

// Update modifies an existing product.
func (s *ProductStore) Update(p *models.Product) error {
	_, err := s.db.Exec(`
		UPDATE products SET
			code = $1, name = $2, description = $3, price = $4,
			category_id = $5, image_url = $6, specs = $7, updated_at = NOW()
		WHERE id = $8
	`, p.Code, p.Name, p.Description, p.Price, p.CategoryID, p.ImageURL, p.Specs, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID.
func (s *ProductStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
