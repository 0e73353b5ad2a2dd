package handler

import (
	"fmt"
	"net/http"
	"time"

	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler handles POST /users
func (h *AuctionHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err, map[string]any{"username": req.Username})
		return
	}

	resp := helpers.UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id":  user.UserID,
		"username": user.Username,
	})
}

// IssueTokenHandler handles POST /tokens
func (h *AuctionHandler) IssueTokenHandler(c *gin.Context) {
	var req helpers.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "IssueTokenHandler", err)
		return
	}

	user, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		helpers.RespondError(c, "IssueTokenHandler", err, map[string]any{"username": req.Username})
		return
	}

	token, expiresAt, err := h.tokens.Issue(user.UserID)
	if err != nil {
		helpers.RespondError(c, "IssueTokenHandler", fmt.Errorf("issue token: %w", err), map[string]any{"user_id": user.UserID})
		return
	}

	resp := helpers.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		UserID:    user.UserID,
	}
	utils.JSONResponse(c, http.StatusCreated, resp, "token issued successfully")
	helpers.LogSuccess("IssueTokenHandler", "token issued successfully", map[string]any{"user_id": user.UserID})
}
