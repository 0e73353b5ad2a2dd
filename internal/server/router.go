package server

import (
	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/identity"
	handler "auction-marketplace/services/auction/handler"
	"auction-marketplace/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Options tunes the cross-cutting middleware
type Options struct {
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionService *auction.AuctionService, tokens *identity.TokenManager, opts Options) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery()) // recover from panics
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware) // custom request logging
	if opts.RateLimitRPS > 0 {
		router.Use(RateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), opts.RateLimitBurst)))
	}
	router.Use(TimeoutMiddleware(opts.RequestTimeout))
	router.Use(OptionalActorMiddleware(tokens))

	auctionHandler := handler.NewAuctionHandler(auctionService, tokens)

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"alive": true}, "ok")
	})

	router.POST("/users", auctionHandler.RegisterHandler)
	router.POST("/tokens", auctionHandler.IssueTokenHandler)

	users := router.Group("/users")
	{
		users.GET("/:user_id/listings", auctionHandler.GetListingsByBidderHandler)
	}

	listings := router.Group("/listings")
	{
		listings.GET("", auctionHandler.ListListingsHandler)
		listings.GET("/:listing_id", auctionHandler.GetListingHandler)
		listings.GET("/:listing_id/bids", auctionHandler.GetBidsByListingHandler)
		listings.GET("/:listing_id/winning", auctionHandler.GetWinningBidHandler)
		listings.GET("/:listing_id/comments", auctionHandler.GetCommentsHandler)
	}

	authed := listings.Group("", RequireActorMiddleware)
	{
		authed.POST("", auctionHandler.CreateListingHandler)
		authed.POST("/:listing_id/bids", auctionHandler.PlaceBidHandler)
		authed.POST("/:listing_id/close", auctionHandler.CloseListingHandler)
		authed.POST("/:listing_id/comments", auctionHandler.AddCommentHandler)
		authed.PUT("/:listing_id/watch", auctionHandler.AddWatchHandler)
		authed.DELETE("/:listing_id/watch", auctionHandler.RemoveWatchHandler)
	}

	me := router.Group("/me", RequireActorMiddleware)
	{
		me.GET("/watchlist", auctionHandler.GetWatchlistHandler)
		me.GET("/listings", auctionHandler.MyListingsHandler)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", auctionHandler.ListCategoriesHandler)
		categories.GET("/:category_id/listings", auctionHandler.ListingsByCategoryHandler)
		categories.POST("", RequireActorMiddleware, auctionHandler.CreateCategoryHandler)
	}

	return router
}
