package handler

import (
	"net/http"

	"auction-marketplace/services/auction/helpers"
	"auction-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// CreateCategoryHandler handles POST /categories
func (h *AuctionHandler) CreateCategoryHandler(c *gin.Context) {
	var req helpers.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCategoryHandler", err)
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		helpers.RespondError(c, "CreateCategoryHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, category, "category created successfully")
	helpers.LogSuccess("CreateCategoryHandler", "category created successfully", map[string]any{
		"category_id": category.CategoryID,
		"name":        category.Name,
	})
}

// ListCategoriesHandler handles GET /categories
func (h *AuctionHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		helpers.RespondError(c, "ListCategoriesHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(categories), "categories retrieved successfully")
	helpers.LogSuccess("ListCategoriesHandler", "categories retrieved successfully", map[string]any{"count": len(categories)})
}

// ListingsByCategoryHandler handles GET /categories/:category_id/listings
func (h *AuctionHandler) ListingsByCategoryHandler(c *gin.Context) {
	categoryID, err := helpers.ParseID(c, "category_id")
	if err != nil {
		helpers.RespondError(c, "ListingsByCategoryHandler", err, nil)
		return
	}

	listings, err := h.service.ListingsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		helpers.RespondError(c, "ListingsByCategoryHandler", err, map[string]any{"category_id": categoryID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, emptyIfNil(listings), "listings retrieved successfully")
	helpers.LogSuccess("ListingsByCategoryHandler", "listings retrieved successfully", map[string]any{
		"category_id": categoryID,
		"count":       len(listings),
	})
}
