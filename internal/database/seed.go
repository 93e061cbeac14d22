// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"mekongdoors/internal/models"
	"mekongdoors/internal/store"
)

// Seed populates a development database with an admin account and
// sample bilingual content. It is a no-op when users already exist.
func Seed(db *sql.DB, adminEmail string) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		return nil
	}

	if adminEmail == "" {
		adminEmail = "admin@mekongdoors.local"
	}

	users := store.NewUserStore(db)
	if _, err := users.Create(adminEmail, "admin123", "Administrator"); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	slog.Info("seeded admin account", "email", adminEmail)

	categories := store.NewCategoryStore(db)
	interior, err := categories.Create(&models.Category{
		Name:        models.LocalizedText{EN: "Interior Doors", KM: "ទ្វារខាងក្នុង"},
		Description: models.LocalizedText{EN: "Doors for rooms and hallways", KM: "ទ្វារសម្រាប់បន្ទប់"},
		SortOrder:   1,
	})
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	if _, err := categories.Create(&models.Category{
		Name:        models.LocalizedText{EN: "Security Doors", KM: "ទ្វារសុវត្ថិភាព"},
		Description: models.LocalizedText{EN: "Reinforced entry doors", KM: "ទ្វារចូលរឹងមាំ"},
		SortOrder:   2,
	}); err != nil {
		return fmt.Errorf("seed category: %w", err)
	}

	products := store.NewProductStore(db)
	if _, err := products.Create(&models.Product{
		Code:        "MD-100",
		Name:        models.LocalizedText{EN: "Classic Teak Door", KM: "ទ្វារឈើម៉ាស៊ីនបុរាណ"},
		Description: models.LocalizedText{EN: "Solid teak interior door", KM: "ទ្វារឈើម៉ាស៊ីនរឹង"},
		Price:       250,
		CategoryID:  &interior.ID,
		Specs: models.SpecMap{
			"material": {
				Label: models.LocalizedText{EN: "Material", KM: "សម្ភារៈ"},
				Value: models.LocalizedText{EN: "Teak wood", KM: "ឈើម៉ាស៊ីន"},
			},
		},
	}); err != nil {
		return fmt.Errorf("seed product: %w", err)
	}

	sections := store.NewSectionStore(db)
	if err := sections.SetFooter(&models.FooterContent{
		CompanyName: models.LocalizedText{EN: "Mekong Doors Co., Ltd.", KM: "ក្រុមហ៊ុន មេគង្គ ដោរ"},
		Address:     models.LocalizedText{EN: "Phnom Penh, Cambodia", KM: "ភ្នំពេញ កម្ពុជា"},
		Phone:       "+855 12 345 678",
		Email:       "sales@mekongdoors.com",
	}); err != nil {
		return fmt.Errorf("seed footer: %w", err)
	}
	if err := sections.SetHero(&models.HeroContent{
		Heading:    models.LocalizedText{EN: "Quality doors, built to last", KM: "ទ្វារគុណភាព ប្រើបានយូរ"},
		Subheading: models.LocalizedText{EN: "Manufactured in Cambodia", KM: "ផលិតនៅកម្ពុជា"},
		CTALabel:   models.LocalizedText{EN: "Browse products", KM: "មើលផលិតផល"},
	}); err != nil {
		return fmt.Errorf("seed hero: %w", err)
	}
	if err := sections.SetAbout(&models.AboutContent{
		Title: models.LocalizedText{EN: "About Mekong Doors", KM: "អំពី មេគង្គ ដោរ"},
		Body: models.LocalizedText{
			EN: "We have manufactured doors in Phnom Penh since 2010.",
			KM: "យើងផលិតទ្វារនៅភ្នំពេញតាំងពីឆ្នាំ 2010។",
		},
	}); err != nil {
		return fmt.Errorf("seed about: %w", err)
	}

	slog.Info("seeded sample content")
	return nil
}
