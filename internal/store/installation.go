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

// InstallationStore manages installation showcase posts.
type InstallationStore struct {
	db *sql.DB
}

// NewInstallationStore returns a new InstallationStore.
func NewInstallationStore(db *sql.DB) *InstallationStore {
	return &InstallationStore{db: db}
}

const installationColumns = `id, title, body, image_url, created_at, updated_at`

func scanInstallation(scanner interface{ Scan(...any) error }) (*models.Installation, error) {
	var in models.Installation
	err := scanner.Scan(
		&in.ID, &in.Title, &in.Body, &in.ImageURL, &in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// ListOrdered returns all installations, newest first.
func (s *InstallationStore) ListOrdered() ([]models.Installation, error) {
	return s.list(`SELECT ` + installationColumns + ` FROM installations ORDER BY created_at DESC`)
}

// ListUnordered returns all installations with no ORDER BY clause.
func (s *InstallationStore) ListUnordered() ([]models.Installation, error) {
	return s.list(`SELECT ` + installationColumns + ` FROM installations`)
}

func (s *InstallationStore) list(query string) ([]models.Installation, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list installations: %w", err)
	}
	defer rows.Close()

	var items []models.Installation
	for rows.Next() {
		in, err := scanInstallation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan installation: %w", err)
		}
		items = append(items, *in)
	}
	return items, rows.Err()
}

// FindByID retrieves an installation by ID. Returns nil if not found.
func (s *InstallationStore) FindByID(id uuid.UUID) (*models.Installation, error) {
	row := s.db.QueryRow(`SELECT `+installationColumns+` FROM installations WHERE id = $1`, id)
	in, err := scanInstallation(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find installation by id: %w", err)
	}
	return in, nil
}

// Create inserts a new installation post and returns it.
func (s *InstallationStore) Create(in *models.Installation) (*models.Installation, error) {
	row := s.db.QueryRow(`
		INSERT INTO installations (title, body, image_url)
		VALUES ($1, $2, $3)
		RETURNING `+installationColumns,
		in.Title, in.Body, in.ImageURL,
	)
	result, err := scanInstallation(row)
	if err != nil {
		return nil, fmt.Errorf("create installation: %w", err)
	}
	return result, nil
}

// Update modifies an existing installation post.
func (s *InstallationStore) Update(in *models.Installation) error {
	_, err := s.db.Exec(`
		UPDATE installations SET
			title = $1, body = $2, image_url = $3, updated_at = NOW()
		WHERE id = $4
	`, in.Title, in.Body, in.ImageURL, in.ID)
	if err != nil {
		return fmt.Errorf("update installation: %w", err)
	}
	return nil
}

// Delete removes an installation post by ID.
func (s *InstallationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM installations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete installation: %w", err)
	}
	return nil
}
