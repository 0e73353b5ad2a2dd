package auction

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/pricing"
	"auction-marketplace/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultCommentsPageSize is used when the caller passes a non-positive page size
const DefaultCommentsPageSize = 10

// AuctionService holds the marketplace business rules on top of an AuctionDB
type AuctionService struct {
	repo             repository.AuctionDB
	commentsPageSize int
	now              func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.AuctionDB, commentsPageSize int) *AuctionService {
	if commentsPageSize <= 0 {
		commentsPageSize = DefaultCommentsPageSize
	}
	return &AuctionService{
		repo:             repo,
		commentsPageSize: commentsPageSize,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// highestBid loads the top bid of a listing; nil means no bids yet
func (s *AuctionService) highestBid(ctx context.Context, listingID uint) (*model.Bid, error) {
	bid, err := s.repo.GetWinningBid(ctx, listingID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to check winning bid: %w", err)
	}
	return &bid, nil
}

// priced attaches the current price to each listing
func (s *AuctionService) priced(ctx context.Context, listings []model.Listing) ([]model.PricedListing, error) {
	out := make([]model.PricedListing, 0, len(listings))
	for _, l := range listings {
		top, err := s.highestBid(ctx, l.ListingID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.PricedListing{Listing: l, CurrentPrice: pricing.PriceFromHighest(l, top)})
	}
	return out, nil
}
