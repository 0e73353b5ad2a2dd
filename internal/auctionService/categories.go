package auction

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxCategoryNameLength = 64

// CreateCategory adds a category listings can be filed under
func (s *AuctionService) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxCategoryNameLength {
		return model.Category{}, fmt.Errorf("service: %w - category name must be 1-%d characters", auctionerrors.ErrValidation, maxCategoryNameLength)
	}

	category, err := s.repo.CreateCategory(ctx, model.Category{Name: name})
	if err != nil {
		return model.Category{}, fmt.Errorf("service: failed to create category: %w", err)
	}
	return category, nil
}

// ListCategories returns every category with its number of active listings
func (s *AuctionService) ListCategories(ctx context.Context) ([]model.CategorySummary, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list categories: %w", err)
	}

	out := make([]model.CategorySummary, 0, len(categories))
	for _, c := range categories {
		count, err := s.repo.CountListings(ctx, c.CategoryID, model.StatusActive)
		if err != nil {
			return nil, fmt.Errorf("service: failed to count listings in category %d: %w", c.CategoryID, err)
		}
		out = append(out, model.CategorySummary{Category: c, ActiveListingCount: count})
	}
	return out, nil
}

// ListingCount counts the listings of a category in the given status
func (s *AuctionService) ListingCount(ctx context.Context, categoryID uint, status model.ListingStatus) (int64, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrValidation, status)
	}

	count, err := s.repo.CountListings(ctx, categoryID, status)
	if err != nil {
		return 0, fmt.Errorf("service: failed to count listings in category %d: %w", categoryID, err)
	}
	return count, nil
}

// ListingsByCategory returns the active listings of a category with their current price
func (s *AuctionService) ListingsByCategory(ctx context.Context, categoryID uint) ([]model.PricedListing, error) {
	if _, err := s.repo.GetCategory(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("service: failed to load category %d: %w", categoryID, err)
	}

	listings, err := s.repo.ListListings(ctx, model.ListingFilter{Status: model.StatusActive, CategoryID: &categoryID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list category %d: %w", categoryID, err)
	}
	return s.priced(ctx, listings)
}
