// Package pricing derives prices and bid legality from a listing and its bid history.
// Every function here is pure; callers load the state and hold whatever lock or
// transaction makes that state consistent.
package pricing

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"fmt"
)

// HighestBid returns the bid with the greatest price. Equal prices resolve to the
// lowest BidID, i.e. the bid that was stored first.
func HighestBid(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Price > highest.Price || (b.Price == highest.Price && b.BidID < highest.BidID) {
			highest = b
		}
	}
	return highest, true
}

// CurrentPrice is the highest bid price, or the starting bid when nobody has bid.
func CurrentPrice(listing model.Listing, bids []model.Bid) int64 {
	if highest, ok := HighestBid(bids); ok {
		return highest.Price
	}
	return listing.StartingBid
}

// PriceFromHighest is CurrentPrice for callers that only loaded the top bid.
func PriceFromHighest(listing model.Listing, highest *model.Bid) int64 {
	if highest == nil {
		return listing.StartingBid
	}
	return highest.Price
}

// BidCount returns the number of bids placed on the listing
func BidCount(bids []model.Bid) int {
	return len(bids)
}

// HighestBidder returns the user holding the highest bid
func HighestBidder(bids []model.Bid) (uint, bool) {
	highest, ok := HighestBid(bids)
	if !ok {
		return 0, false
	}
	return highest.BidderID, true
}

// UserHasHighestBid compares the user's maximum bid, not their latest one, with the
// overall maximum.
func UserHasHighestBid(bids []model.Bid, userID uint) bool {
	highest, ok := HighestBid(bids)
	if !ok {
		return false
	}

	var userMax int64
	found := false
	for _, b := range bids {
		if b.BidderID != userID {
			continue
		}
		if !found || b.Price > userMax {
			userMax = b.Price
			found = true
		}
	}
	return found && userMax == highest.Price
}

// Winner returns the highest bidder of a closed listing. Active listings have no winner.
func Winner(listing model.Listing, bids []model.Bid) (uint, bool) {
	if listing.IsActive() {
		return 0, false
	}
	return HighestBidder(bids)
}

// ValidateBid applies the bidding rules in order: the listing must be active, then the
// price must beat the highest bid, or match at least the starting bid when there is none.
func ValidateBid(listing model.Listing, highest *model.Bid, price int64) error {
	if !listing.IsActive() {
		return fmt.Errorf("pricing: %w - listing %d is %s", auctionerrors.ErrListingClosed, listing.ListingID, listing.Status)
	}

	if highest != nil {
		if price <= highest.Price {
			return fmt.Errorf("pricing: %w - current highest bid is %d", auctionerrors.ErrBidTooLow, highest.Price)
		}
		return nil
	}

	if price < listing.StartingBid {
		return fmt.Errorf("pricing: %w - starting bid is %d", auctionerrors.ErrBidTooLow, listing.StartingBid)
	}
	return nil
}
