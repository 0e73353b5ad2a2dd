package auction

import (
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/pricing"
	"context"
	"fmt"
)

// ViewerRole tells which variant of a listing page the caller gets
type ViewerRole string

const (
	ViewerGuest     ViewerRole = "guest"
	ViewerOwner     ViewerRole = "owner"
	ViewerOtherUser ViewerRole = "other_user"
)

// RoleFor returns the role of viewerID for a listing. Zero is a guest.
func RoleFor(listing model.Listing, viewerID uint) ViewerRole {
	switch {
	case viewerID == 0:
		return ViewerGuest
	case viewerID == listing.ListedBy:
		return ViewerOwner
	default:
		return ViewerOtherUser
	}
}

// ViewerDetails holds the fields only a signed-in viewer sees
type ViewerDetails struct {
	UserHasHighestBid bool `json:"user_has_highest_bid"`
	InWatchlist       bool `json:"in_watchlist"`
	IsWinner          bool `json:"is_winner"`
}

// ListingView is the listing page
type ListingView struct {
	Listing      model.Listing   `json:"listing"`
	CurrentPrice int64           `json:"current_price"`
	BidCount     int             `json:"bid_count"`
	Viewer       ViewerRole      `json:"viewer"`
	Details      *ViewerDetails  `json:"details,omitempty"`
	Comments     []model.Comment `json:"comments,omitempty"`
}

// GetListingView builds the listing page for viewerID (zero for guests)
func (s *AuctionService) GetListingView(ctx context.Context, listingID, viewerID uint) (ListingView, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return ListingView{}, fmt.Errorf("service: failed to load listing %d: %w", listingID, err)
	}

	bids, err := s.repo.GetBidsByListing(ctx, listingID)
	if err != nil {
		return ListingView{}, fmt.Errorf("service: failed to get bids for listing %d: %w", listingID, err)
	}

	view := ListingView{
		Listing:      listing,
		CurrentPrice: pricing.CurrentPrice(listing, bids),
		BidCount:     pricing.BidCount(bids),
		Viewer:       RoleFor(listing, viewerID),
	}

	comments, err := s.repo.GetCommentsByListing(ctx, listingID, model.Page{Number: 1, Size: s.commentsPageSize})
	if err != nil {
		return ListingView{}, fmt.Errorf("service: failed to get comments for listing %d: %w", listingID, err)
	}
	view.Comments = comments

	if view.Viewer == ViewerGuest {
		return view, nil
	}

	watching, err := s.repo.IsWatching(ctx, viewerID, listingID)
	if err != nil {
		return ListingView{}, fmt.Errorf("service: failed to check watchlist: %w", err)
	}
	winner, hasWinner := pricing.Winner(listing, bids)
	view.Details = &ViewerDetails{
		UserHasHighestBid: pricing.UserHasHighestBid(bids, viewerID),
		InWatchlist:       watching,
		IsWinner:          hasWinner && winner == viewerID,
	}

	return view, nil
}
