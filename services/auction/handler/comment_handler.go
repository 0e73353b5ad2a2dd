package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// AddCommentHandler handles POST /listings/:listing_id/comments
func (h *AuctionHandler) AddCommentHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "AddCommentHandler", err, nil)
		return
	}

	var req helpers.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddCommentHandler", err)
		return
	}

	authorID := helpers.ActorID(c)
	comment, err := h.service.AddComment(c.Request.Context(), listingID, authorID, req.Text)
	if err != nil {
		helpers.RespondError(c, "AddCommentHandler", err, map[string]any{"listing_id": listingID, "user_id": authorID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, comment, "comment added successfully")
	helpers.LogSuccess("AddCommentHandler", "comment added successfully", map[string]any{
		"comment_id": comment.CommentID,
		"listing_id": listingID,
		"user_id":    authorID,
	})
}

// GetCommentsHandler handles GET /listings/:listing_id/comments?page=N
func (h *AuctionHandler) GetCommentsHandler(c *gin.Context) {
	listingID, err := helpers.ParseID(c, "listing_id")
	if err != nil {
		helpers.RespondError(c, "GetCommentsHandler", err, nil)
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		helpers.RespondError(c, "GetCommentsHandler", fmt.Errorf("%w - page must be a number", auctionerrors.ErrValidation), map[string]any{"listing_id": listingID})
		return
	}

	comments, err := h.service.GetComments(c.Request.Context(), listingID, page)
	if err != nil {
		helpers.RespondError(c, "GetCommentsHandler", err, map[string]any{"listing_id": listingID, "page": page})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(comments), "comments retrieved successfully")
	helpers.LogSuccess("GetCommentsHandler", "comments retrieved successfully", map[string]any{
		"listing_id": listingID,
		"page":       page,
		"count":      len(comments),
	})
}
