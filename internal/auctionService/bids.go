package auction

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/pricing"
	"context"
	"fmt"
)

// PlaceBid validates and records a user's bid on a listing. The listing state and the
// highest bid are read and the bid is written in one store transaction.
func (s *AuctionService) PlaceBid(ctx context.Context, listingID, bidderID uint, price int64) (model.Bid, error) {
	if listingID == 0 || bidderID == 0 {
		return model.Bid{}, fmt.Errorf("service: %w - missing listingID or bidderID", auctionerrors.ErrValidation)
	}
	if price <= 0 {
		return model.Bid{}, fmt.Errorf("service: %w - non-positive bid price", auctionerrors.ErrValidation)
	}

	bid := model.Bid{
		ListingID: listingID,
		BidderID:  bidderID,
		Price:     price,
		CreatedAt: s.now(),
	}

	stored, err := s.repo.RecordBid(ctx, bid, func(listing model.Listing, highest *model.Bid) error {
		return pricing.ValidateBid(listing, highest, price)
	})
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to record bid on listing %d by user %d: %w", listingID, bidderID, err)
	}

	return stored, nil
}

// GetBidsForListing returns all bids for a listing in placement order
func (s *AuctionService) GetBidsForListing(ctx context.Context, listingID uint) ([]model.Bid, error) {
	if listingID == 0 {
		return nil, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrValidation)
	}

	bids, err := s.repo.GetBidsByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for listing %d: %w", listingID, err)
	}

	return bids, nil
}

// GetWinningBid returns the highest bid for a listing
func (s *AuctionService) GetWinningBid(ctx context.Context, listingID uint) (model.Bid, error) {
	if listingID == 0 {
		return model.Bid{}, fmt.Errorf("service: %w - empty listing ID", auctionerrors.ErrValidation)
	}

	winningBid, err := s.repo.GetWinningBid(ctx, listingID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for listing %d: %w", listingID, err)
	}

	return winningBid, nil
}

// GetListingsByBidder returns all listings a user has placed bids on
func (s *AuctionService) GetListingsByBidder(ctx context.Context, userID uint) ([]model.PricedListing, error) {
	if userID == 0 {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	listings, err := s.repo.GetListingsByBidder(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get listings for bidder %d: %w", userID, err)
	}

	return s.priced(ctx, listings)
}
