package perftests

import (
	"context"
	"fmt"
	"testing"

	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	repository "auction-marketplace/internal/repository"
)

var ctx = context.Background()

// setupMarket creates a memory-backed service with one seller and numListings
// active listings. Listing ids run from 1 to numListings.
func setupMarket(tb testing.TB, numListings int, startingBid int64) (*repository.MemoryRepo, *auction.AuctionService) {
	tb.Helper()

	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo, 10)

	seller, err := repo.CreateUser(ctx, model.User{Username: "seller", PasswordHash: "x"})
	if err != nil {
		tb.Fatalf("failed to create seller: %v", err)
	}

	for i := 0; i < numListings; i++ {
		_, err := svc.CreateListing(ctx, auction.CreateListingInput{
			Title:       fmt.Sprintf("listing_%d", i),
			Description: "Benchmark listing",
			StartingBid: startingBid,
		}, seller.UserID)
		if err != nil {
			tb.Fatalf("failed to create listing: %v", err)
		}
	}
	return repo, svc
}
