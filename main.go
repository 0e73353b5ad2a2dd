package main

import (
	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/utils"
	"context"
	"fmt"
	"os"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo, err := openRepository(cfg)
	if err != nil {
		utils.Fatal("failed to open storage", map[string]any{"driver": cfg.DBDriver, "error": err.Error()})
	}

	auctionSvc := auction.NewAuctionService(repo, cfg.CommentsPageSize)

	if cfg.SeedDemoData {
		if err := prepopulateListings(context.Background(), auctionSvc); err != nil {
			utils.Warn("demo data not seeded", map[string]any{"error": err.Error()})
		}
	}

	tokens := identity.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	router := server.SetupRouter(auctionSvc, tokens, server.Options{
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout,
	})

	utils.Info("starting auction server", map[string]any{"addr": cfg.Port, "driver": cfg.DBDriver})
	if err := router.Run(cfg.Port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openRepository picks the storage backend named by DB_DRIVER
func openRepository(cfg config.Config) (repository.AuctionDB, error) {
	if cfg.DBDriver == config.DriverMemory {
		return repository.NewMemoryRepo(), nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	return repository.NewSQLRepo(db), nil
}

// prepopulateListings adds a demo seller, categories and listings
func prepopulateListings(ctx context.Context, svc *auction.AuctionService) error {
	seller, err := svc.Register(ctx, "demo_seller", "demo-password")
	if err != nil {
		return err
	}

	categories := map[string]uint{}
	for _, name := range []string{"Music", "Books", "Electronics"} {
		c, err := svc.CreateCategory(ctx, name)
		if err != nil {
			return err
		}
		categories[name] = c.CategoryID
	}

	listings := []struct {
		title       string
		description string
		startingBid int64
		category    string
	}{
		{"Acoustic guitar", "Six strings, lightly used", 100, "Music"},
		{"First edition novel", "Signed copy", 200, "Books"},
		{"Vintage radio", "Works, needs a new knob", 150, "Electronics"},
	}
	for _, l := range listings {
		categoryID := categories[l.category]
		_, err := svc.CreateListing(ctx, auction.CreateListingInput{
			Title:       l.title,
			Description: l.description,
			StartingBid: l.startingBid,
			CategoryID:  &categoryID,
		}, seller.UserID)
		if err != nil {
			return err
		}
	}

	utils.Info("demo data seeded", map[string]any{"seller_id": seller.UserID, "listings": len(listings)})
	return nil
}
