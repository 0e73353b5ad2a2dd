package auction

import (
	model "auction-marketplace/internal/models"
	"context"
	"fmt"
)

// AddWatch puts a listing on the user's watchlist. Adding twice is a no-op.
func (s *AuctionService) AddWatch(ctx context.Context, userID, listingID uint) error {
	if err := s.repo.AddWatch(ctx, userID, listingID); err != nil {
		return fmt.Errorf("service: failed to watch listing %d for user %d: %w", listingID, userID, err)
	}
	return nil
}

// RemoveWatch drops a listing from the user's watchlist. Removing an absent entry is a no-op.
func (s *AuctionService) RemoveWatch(ctx context.Context, userID, listingID uint) error {
	if err := s.repo.RemoveWatch(ctx, userID, listingID); err != nil {
		return fmt.Errorf("service: failed to unwatch listing %d for user %d: %w", listingID, userID, err)
	}
	return nil
}

func (s *AuctionService) IsWatching(ctx context.Context, userID, listingID uint) (bool, error) {
	watching, err := s.repo.IsWatching(ctx, userID, listingID)
	if err != nil {
		return false, fmt.Errorf("service: failed to check watchlist: %w", err)
	}
	return watching, nil
}

// GetWatchlist returns the user's watched listings with their current price
func (s *AuctionService) GetWatchlist(ctx context.Context, userID uint) ([]model.PricedListing, error) {
	listings, err := s.repo.GetWatchlist(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get watchlist for user %d: %w", userID, err)
	}
	return s.priced(ctx, listings)
}
