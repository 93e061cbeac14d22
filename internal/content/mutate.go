// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// mutate.go holds the write side of the content accessor. Every
// mutation follows the same discipline: the store write completes (or
// fails) first, then the collection tag is invalidated, then the
// rendered-page cache is purged, and only then does the call return.
// Write errors always propagate — silently losing a write is not
// acceptable, unlike serving briefly stale reads.
package content

import (
	"context"

	"github.com/google/uuid"

	"mekongdoors/internal/models"
)

// invalidate drops the given tags and purges the page cache.
func (s *Service) invalidate(ctx context.Context, tags ...string) {
	for _, tag := range tags {
		s.cache.Invalidate(tag)
	}
	if s.pages != nil {
		s.pages.InvalidateAll(ctx)
	}
}

// --- Categories ---

// CreateCategory appends a category (at the end of the sort order when
// none is given) and invalidates the category list.
func (s *Service) CreateCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	if c.SortOrder == 0 {
		if next, err := s.categories.NextSortOrder(); err == nil {
			c.SortOrder = next
		}
	}
	created, err := s.categories.Create(c)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, TagCategories)
	return created, nil
}

// UpdateCategory modifies a category and invalidates the category list.
func (s *Service) UpdateCategory(ctx context.Context, c *models.Category) error {
	if err := s.categories.Update(c); err != nil {
		return err
	}
	s.invalidate(ctx, TagCategories)
	return nil
}

// DeleteCategory removes a category. Products referencing it keep their
// dangling category_id and render as uncategorized, so the product
// collection is invalidated too.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categories.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, TagCategories, TagProducts)
	return nil
}

// ReorderCategories rewrites every category's sort order to match the
// position of its id in ids. The store applies the whole reorder in one
// transaction; on any failure nothing is applied and the cache is left
// untouched, so readers keep seeing the last known-good order.
func (s *Service) ReorderCategories(ctx context.Context, ids []uuid.UUID) error {
	if err := s.categories.Reorder(ids); err != nil {
		return err
	}
	s.invalidate(ctx, TagCategories)
	return nil
}

// --- Products ---

// CreateProduct inserts a product and invalidates the product list.
func (s *Service) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	created, err := s.products.Create(p)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, TagProducts)
	return created, nil
}

// UpdateProduct modifies a product and invalidates both the list and
// the product's own detail tag.
func (s *Service) UpdateProduct(ctx context.Context, p *models.Product) error {
	if err := s.products.Update(p); err != nil {
		return err
	}
	s.invalidate(ctx, TagProducts, tagProductPrefix+p.ID.String())
	return nil
}

// DeleteProduct removes a product and invalidates its tags.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, TagProducts, tagProductPrefix+id.String())
	return nil
}

// --- Installations ---

// CreateInstallation inserts a showcase post and invalidates the list.
func (s *Service) CreateInstallation(ctx context.Context, in *models.Installation) (*models.Installation, error) {
	created, err := s.installations.Create(in)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, TagInstallations)
	return created, nil
}

// UpdateInstallation modifies a showcase post and invalidates the list.
func (s *Service) UpdateInstallation(ctx context.Context, in *models.Installation) error {
	if err := s.installations.Update(in); err != nil {
		return err
	}
	s.invalidate(ctx, TagInstallations)
	return nil
}

// DeleteInstallation removes a showcase post and invalidates the list.
func (s *Service) DeleteInstallation(ctx context.Context, id uuid.UUID) error {
	if err := s.installations.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, TagInstallations)
	return nil
}

// --- Singleton sections ---

// SetAbout upserts the about-page content and invalidates its tag.
func (s *Service) SetAbout(ctx context.Context, a *models.AboutContent) error {
	if err := s.sections.SetAbout(a); err != nil {
		return err
	}
	s.invalidate(ctx, TagAbout)
	return nil
}

// SetFooter upserts the footer content and invalidates its tag.
func (s *Service) SetFooter(ctx context.Context, f *models.FooterContent) error {
	if err := s.sections.SetFooter(f); err != nil {
		return err
	}
	s.invalidate(ctx, TagFooter)
	return nil
}

// SetHero upserts the hero content and invalidates its tag.
func (s *Service) SetHero(ctx context.Context, h *models.HeroContent) error {
	if err := s.sections.SetHero(h); err != nil {
		return err
	}
	s.invalidate(ctx, TagHero)
	return nil
}

// --- Quote messages ---

// CreateMessage persists a quote request. Messages are write-only from
// the public side and never cached, so no invalidation happens here.
func (s *Service) CreateMessage(ctx context.Context, m *models.QuoteMessage) (*models.QuoteMessage, error) {
	return s.messages.Create(m)
}

// MarkMessageNotified records a successful Telegram notification.
func (s *Service) MarkMessageNotified(ctx context.Context, id uuid.UUID) error {
	return s.messages.MarkNotified(id)
}

// Messages lists quote requests for the admin API (uncached — admin
// reads want the live truth).
func (s *Service) Messages(ctx context.Context) ([]models.QuoteMessage, error) {
	return s.messages.List()
}
