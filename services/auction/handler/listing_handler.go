package handler

import (
	"net/http"

	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CreateListingHandler handles POST /listings
func (h *AuctionHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	actorID := helpers.ActorID(c)
	listing, err := h.service.CreateListing(c.Request.Context(), auction.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		StartingBid: req.StartingBid,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
	}, actorID)
	if err != nil {
		helpers.RespondError(c, "CreateListingHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, listing, "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id":   listing.ListingID,
		"user_id":      actorID,
		"starting_bid": listing.StartingBid,
	})
}

// ListListingsHandler handles GET /listings
func (h *AuctionHandler) ListListingsHandler(c *gin.Context) {
	status := model.ListingStatus(c.Query("status"))
	listings, err := h.service.ListListings(c.Request.Context(), status)
	if err != nil {
		helpers.RespondError(c, "ListListingsHandler", err, map[string]any{"status": status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(listings), "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"status": status,
		"count":  len(listings),
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *AuctionHandler) GetListingHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "GetListingHandler", err, nil)
		return
	}

	view, err := h.service.GetListingView(c.Request.Context(), listingID, helpers.ActorID(c))
	if err != nil {
		helpers.RespondError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, view, "listing retrieved successfully")
	helpers.LogSuccess("GetListingHandler", "listing retrieved successfully", map[string]any{
		"listing_id": listingID,
		"viewer":     view.Viewer,
	})
}

// CloseListingHandler handles POST /listings/:listing_id/close
func (h *AuctionHandler) CloseListingHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "CloseListingHandler", err, nil)
		return
	}

	actorID := helpers.ActorID(c)
	listing, err := h.service.CloseListing(c.Request.Context(), listingID, actorID)
	if err != nil {
		helpers.RespondError(c, "CloseListingHandler", err, map[string]any{"listing_id": listingID, "user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, listing, "listing closed successfully")
	helpers.LogSuccess("CloseListingHandler", "listing closed successfully", map[string]any{
		"listing_id": listingID,
		"user_id":    actorID,
	})
}

// MyListingsHandler handles GET /me/listings
func (h *AuctionHandler) MyListingsHandler(c *gin.Context) {
	actorID := helpers.ActorID(c)
	listings, err := h.service.ListingsByOwner(c.Request.Context(), actorID)
	if err != nil {
		helpers.RespondError(c, "MyListingsHandler", err, map[string]any{"user_id": actorID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(listings), "listings retrieved successfully")
	helpers.LogSuccess("MyListingsHandler", "listings retrieved successfully", map[string]any{
		"user_id": actorID,
		"count":   len(listings),
	})
}

// GetListingsByBidderHandler handles GET /users/:user_id/listings
func (h *AuctionHandler) GetListingsByBidderHandler(c *gin.Context) {
	userID, err := helpers.ParseID(c, "user_id")
	if err != nil {
		helpers.RespondError(c, "GetListingsByBidderHandler", err, nil)
		return
	}

	listings, err := h.service.GetListingsByBidder(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetListingsByBidderHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(listings), "listings retrieved successfully")
	helpers.LogSuccess("GetListingsByBidderHandler", "listings retrieved successfully", map[string]any{
		"user_id":        userID,
		"listings_count": len(listings),
	})
}
