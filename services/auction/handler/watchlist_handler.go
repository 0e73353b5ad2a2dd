package handler

import (
	"net/http"

	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// AddWatchHandler handles PUT /listings/:listing_id/watch
func (h *AuctionHandler) AddWatchHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "AddWatchHandler", err, nil)
		return
	}

	userID := helpers.ActorID(c)
	if err := h.service.AddWatch(c.Request.Context(), userID, listingID); err != nil {
		helpers.RespondError(c, "AddWatchHandler", err, map[string]any{"listing_id": listingID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "watching": true}, "listing added to watchlist")
	helpers.LogSuccess("AddWatchHandler", "listing added to watchlist", map[string]any{"listing_id": listingID, "user_id": userID})
}

// RemoveWatchHandler handles DELETE /listings/:listing_id/watch
func (h *AuctionHandler) RemoveWatchHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "RemoveWatchHandler", err, nil)
		return
	}

	userID := helpers.ActorID(c)
	if err := h.service.RemoveWatch(c.Request.Context(), userID, listingID); err != nil {
		helpers.RespondError(c, "RemoveWatchHandler", err, map[string]any{"listing_id": listingID, "user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"listing_id": listingID, "watching": false}, "listing removed from watchlist")
	helpers.LogSuccess("RemoveWatchHandler", "listing removed from watchlist", map[string]any{"listing_id": listingID, "user_id": userID})
}

// GetWatchlistHandler handles GET /me/watchlist
func (h *AuctionHandler) GetWatchlistHandler(c *gin.Context) {
	userID := helpers.ActorID(c)
	listings, err := h.service.GetWatchlist(c.Request.Context(), userID)
	if err != nil {
		helpers.RespondError(c, "GetWatchlistHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(listings), "watchlist retrieved successfully")
	helpers.LogSuccess("GetWatchlistHandler", "watchlist retrieved successfully", map[string]any{
		"user_id": userID,
		"count":   len(listings),
	})
}
