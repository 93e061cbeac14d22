// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Singleton site sections. Each lives as one JSONB row in site_sections
// keyed by section name; the stores marshal these structs into the
// payload column.

// Section row names in the site_sections table.
const (
	SectionAbout  = "about"
	SectionFooter = "footer"
	SectionHero   = "hero"
)

// AboutContent is the about-page body. Body is Markdown source.
type AboutContent struct {
	Title    LocalizedText `json:"title"`
	Body     LocalizedText `json:"body"`
	ImageURL string        `json:"image_url"`
}

// FooterContent holds the company/contact block shown on every page.
type FooterContent struct {
	CompanyName LocalizedText `json:"company_name"`
	Address     LocalizedText `json:"address"`
	Phone       string        `json:"phone"`
	Email       string        `json:"email"`
	FacebookURL string        `json:"facebook_url"`
	TelegramURL string        `json:"telegram_url"`
}

// HeroContent is the homepage hero banner.
type HeroContent struct {
	Heading    LocalizedText `json:"heading"`
	Subheading LocalizedText `json:"subheading"`
	ImageURL   string        `json:"image_url"`
	CTALabel   LocalizedText `json:"cta_label"`
}
