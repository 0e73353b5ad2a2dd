package handler

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

import (
	"context"
	"time"

	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
)

type AuctionServiceInterface interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)

	CreateListing(ctx context.Context, in auction.CreateListingInput, actorID uint) (model.Listing, error)
	ListListings(ctx context.Context, status model.ListingStatus) ([]model.PricedListing, error)
	ListingsByOwner(ctx context.Context, userID uint) ([]model.PricedListing, error)
	GetListingsByBidder(ctx context.Context, userID uint) ([]model.PricedListing, error)
	GetListingView(ctx context.Context, listingID, viewerID uint) (auction.ListingView, error)
	CloseListing(ctx context.Context, listingID, actorID uint) (model.Listing, error)

	PlaceBid(ctx context.Context, listingID, bidderID uint, price int64) (model.Bid, error)
	GetBidsForListing(ctx context.Context, listingID uint) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, listingID uint) (model.Bid, error)

	AddComment(ctx context.Context, listingID, authorID uint, text string) (model.Comment, error)
	GetComments(ctx context.Context, listingID uint, page int) ([]model.Comment, error)

	AddWatch(ctx context.Context, userID, listingID uint) error
	RemoveWatch(ctx context.Context, userID, listingID uint) error
	GetWatchlist(ctx context.Context, userID uint) ([]model.PricedListing, error)

	CreateCategory(ctx context.Context, name string) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.CategorySummary, error)
	ListingsByCategory(ctx context.Context, categoryID uint) ([]model.PricedListing, error)
}

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID uint) (string, time.Time, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	tokens  TokenIssuer
}

func NewAuctionHandler(service AuctionServiceInterface, tokens TokenIssuer) *AuctionHandler {
	return &AuctionHandler{service: service, tokens: tokens}
}

func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
