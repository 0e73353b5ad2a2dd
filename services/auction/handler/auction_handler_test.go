package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auction-marketplace/internal/auctionerrors"
	auction "auction-marketplace/internal/auctionService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter mounts every handler on a bare engine. A non-zero actorID is
// injected as the authenticated user.
func newTestRouter(t *testing.T, actorID uint) (*gin.Engine, *MockAuctionServiceInterface, *MockTokenIssuer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	mockTokens := NewMockTokenIssuer(ctrl)
	h := NewAuctionHandler(mockService, mockTokens)

	router := gin.New()
	if actorID != 0 {
		router.Use(func(c *gin.Context) { c.Set(helpers.ActorKey, actorID) })
	}
	router.POST("/users", h.RegisterHandler)
	router.POST("/tokens", h.IssueTokenHandler)
	router.GET("/listings", h.ListListingsHandler)
	router.POST("/listings", h.CreateListingHandler)
	router.GET("/listings/:listing_id", h.GetListingHandler)
	router.POST("/listings/:listing_id/bids", h.PlaceBidHandler)
	router.GET("/listings/:listing_id/bids", h.GetBidsByListingHandler)
	router.GET("/listings/:listing_id/winning", h.GetWinningBidHandler)
	router.POST("/listings/:listing_id/close", h.CloseListingHandler)
	router.GET("/listings/:listing_id/comments", h.GetCommentsHandler)
	router.POST("/listings/:listing_id/comments", h.AddCommentHandler)
	router.PUT("/listings/:listing_id/watch", h.AddWatchHandler)
	router.DELETE("/listings/:listing_id/watch", h.RemoveWatchHandler)
	router.GET("/me/watchlist", h.GetWatchlistHandler)
	router.GET("/me/listings", h.MyListingsHandler)
	router.GET("/users/:user_id/listings", h.GetListingsByBidderHandler)
	router.GET("/categories", h.ListCategoriesHandler)
	router.POST("/categories", h.CreateCategoryHandler)
	router.GET("/categories/:category_id/listings", h.ListingsByCategoryHandler)

	return router, mockService, mockTokens
}

// do sends a request and decodes the response envelope
func do(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name           string
		path           string
		requestBody    any
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			path:        "/listings/1/bids",
			requestBody: helpers.PlaceBidRequest{Price: 100},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), uint(1), uint(7), int64(100)).
					Return(model.Bid{BidID: 3, ListingID: 1, BidderID: 7, Price: 100, CreatedAt: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, 3.0, data["bid_id"])
				require.Equal(t, 1.0, data["listing_id"])
				require.Equal(t, 7.0, data["bidder_id"])
				require.Equal(t, 100.0, data["price"])
				require.Equal(t, now.Format(time.RFC3339), data["created_at"])
			},
		},
		{
			name:           "invalid_json",
			path:           "/listings/1/bids",
			requestBody:    `{invalid json}`,
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "zero_price",
			path:           "/listings/1/bids",
			requestBody:    helpers.PlaceBidRequest{Price: 0},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "negative_price",
			path:           "/listings/1/bids",
			requestBody:    helpers.PlaceBidRequest{Price: -10},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "bad_listing_id",
			path:           "/listings/abc/bids",
			requestBody:    helpers.PlaceBidRequest{Price: 10},
			mockSetup:      func(m *MockAuctionServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:        "service_bid_too_low",
			path:        "/listings/1/bids",
			requestBody: helpers.PlaceBidRequest{Price: 50},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), uint(1), uint(7), int64(50)).Return(model.Bid{}, auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "bid amount too low",
		},
		{
			name:        "service_listing_closed",
			path:        "/listings/1/bids",
			requestBody: helpers.PlaceBidRequest{Price: 500},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), uint(1), uint(7), int64(500)).Return(model.Bid{}, auctionerrors.ErrListingClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is closed",
		},
		{
			name:        "service_listing_not_found",
			path:        "/listings/9/bids",
			requestBody: helpers.PlaceBidRequest{Price: 500},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), uint(9), uint(7), int64(500)).Return(model.Bid{}, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "resource not found",
		},
		{
			name:        "service_generic_error",
			path:        "/listings/1/bids",
			requestBody: helpers.PlaceBidRequest{Price: 100},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), uint(1), uint(7), int64(100)).Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService, _ := newTestRouter(t, 7)
			tc.mockSetup(mockService)

			code, resp := do(t, router, http.MethodPost, tc.path, tc.requestBody)
			require.Equal(t, tc.expectedStatus, code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetBidsByListingHandler
func TestGetBidsByListingHandler(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	bids := []model.Bid{
		{BidID: 1, ListingID: 1, BidderID: 2, Price: 100, CreatedAt: now},
		{BidID: 2, ListingID: 1, BidderID: 3, Price: 150, CreatedAt: now.Add(time.Second)},
	}

	tests := []struct {
		name           string
		listingID      string
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedCount  int
	}{
		{
			name:      "listing_with_bids",
			listingID: "1",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetBidsForListing(gomock.Any(), uint(1)).Return(bids, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:      "listing_without_bids",
			listingID: "2",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetBidsForListing(gomock.Any(), uint(2)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  0,
		},
		{
			name:      "unknown_listing",
			listingID: "3",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetBidsForListing(gomock.Any(), uint(3)).Return(nil, auctionerrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService, _ := newTestRouter(t, 0)
			tc.mockSetup(mockService)

			code, resp := do(t, router, http.MethodGet, "/listings/"+tc.listingID+"/bids", nil)
			require.Equal(t, tc.expectedStatus, code)
			if code == http.StatusOK {
				require.Len(t, resp["data"].([]any), tc.expectedCount)
			}
		})
	}
}

// Test GetWinningBidHandler
func TestGetWinningBidHandler(t *testing.T) {
	t.Parallel()

	t.Run("winning_bid_found", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().GetWinningBid(gomock.Any(), uint(1)).
			Return(model.Bid{BidID: 2, ListingID: 1, BidderID: 3, Price: 150}, nil)

		code, resp := do(t, router, http.MethodGet, "/listings/1/winning", nil)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, 150.0, resp["data"].(map[string]any)["price"])
	})

	t.Run("no_bids", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().GetWinningBid(gomock.Any(), uint(1)).Return(model.Bid{}, auctionerrors.ErrNoBids)

		code, resp := do(t, router, http.MethodGet, "/listings/1/winning", nil)
		require.Equal(t, http.StatusNotFound, code)
		require.Equal(t, "no winning bid found", resp["message"])
	})
}

// Test CloseListingHandler
func TestCloseListingHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		mockSetup      func(m *MockAuctionServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "owner_closes",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseListing(gomock.Any(), uint(4), uint(7)).
					Return(model.Listing{ListingID: 4, ListedBy: 7, Status: model.StatusInactive}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing closed successfully",
		},
		{
			name: "not_owner",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseListing(gomock.Any(), uint(4), uint(7)).Return(model.Listing{}, auctionerrors.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "action not allowed",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService, _ := newTestRouter(t, 7)
			tc.mockSetup(mockService)

			code, resp := do(t, router, http.MethodPost, "/listings/4/close", nil)
			require.Equal(t, tc.expectedStatus, code)
			require.Equal(t, tc.expectedMsg, resp["message"])
		})
	}
}

// Test AddCommentHandler and GetCommentsHandler
func TestCommentHandlers(t *testing.T) {
	t.Parallel()

	t.Run("add_comment", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 7)
		mockService.EXPECT().AddComment(gomock.Any(), uint(1), uint(7), "hi").
			Return(model.Comment{CommentID: 1, ListingID: 1, AuthorID: 7, Text: "hi"}, nil)

		code, _ := do(t, router, http.MethodPost, "/listings/1/comments", helpers.CommentRequest{Text: "hi"})
		require.Equal(t, http.StatusCreated, code)
	})

	t.Run("empty_comment", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 7)
		mockService.EXPECT().AddComment(gomock.Any(), uint(1), uint(7), "  ").Return(model.Comment{}, auctionerrors.ErrEmptyText)

		code, resp := do(t, router, http.MethodPost, "/listings/1/comments", helpers.CommentRequest{Text: "  "})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "comment text is empty", resp["message"])
	})

	t.Run("get_second_page", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().GetComments(gomock.Any(), uint(1), 2).Return([]model.Comment{{CommentID: 1, Text: "old"}}, nil)

		code, resp := do(t, router, http.MethodGet, "/listings/1/comments?page=2", nil)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, resp["data"].([]any), 1)
	})

	t.Run("bad_page", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t, 0)
		code, _ := do(t, router, http.MethodGet, "/listings/1/comments?page=x", nil)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

// Test GetListingHandler
func TestGetListingHandler(t *testing.T) {
	t.Parallel()

	t.Run("guest_view", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().GetListingView(gomock.Any(), uint(1), uint(0)).
			Return(auction.ListingView{Listing: model.Listing{ListingID: 1}, CurrentPrice: 10, Viewer: auction.ViewerGuest}, nil)

		code, resp := do(t, router, http.MethodGet, "/listings/1", nil)
		require.Equal(t, http.StatusOK, code)
		data := resp["data"].(map[string]any)
		require.Equal(t, "guest", data["viewer"])
		require.NotContains(t, data, "details")
	})

	t.Run("signed_in_view", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 7)
		mockService.EXPECT().GetListingView(gomock.Any(), uint(1), uint(7)).
			Return(auction.ListingView{
				Listing:      model.Listing{ListingID: 1},
				CurrentPrice: 10,
				Viewer:       auction.ViewerOtherUser,
				Details:      &auction.ViewerDetails{InWatchlist: true},
			}, nil)

		code, resp := do(t, router, http.MethodGet, "/listings/1", nil)
		require.Equal(t, http.StatusOK, code)
		details := resp["data"].(map[string]any)["details"].(map[string]any)
		require.Equal(t, true, details["in_watchlist"])
	})

	t.Run("not_found", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().GetListingView(gomock.Any(), uint(9), uint(0)).Return(auction.ListingView{}, auctionerrors.ErrNotFound)

		code, _ := do(t, router, http.MethodGet, "/listings/9", nil)
		require.Equal(t, http.StatusNotFound, code)
	})
}

// Test CreateListingHandler
func TestCreateListingHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid_listing", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 7)
		mockService.EXPECT().CreateListing(gomock.Any(), auction.CreateListingInput{Title: "Guitar", StartingBid: 100}, uint(7)).
			Return(model.Listing{ListingID: 1, Title: "Guitar", StartingBid: 100, ListedBy: 7, Status: model.StatusActive}, nil)

		code, resp := do(t, router, http.MethodPost, "/listings", helpers.CreateListingRequest{Title: "Guitar", StartingBid: 100})
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "active", resp["data"].(map[string]any)["status"])
	})

	t.Run("missing_title", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t, 7)
		code, resp := do(t, router, http.MethodPost, "/listings", helpers.CreateListingRequest{StartingBid: 100})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "invalid request payload", resp["message"])
	})

	t.Run("unknown_category", func(t *testing.T) {
		t.Parallel()

		categoryID := uint(5)
		router, mockService, _ := newTestRouter(t, 7)
		mockService.EXPECT().CreateListing(gomock.Any(), gomock.Any(), uint(7)).Return(model.Listing{}, auctionerrors.ErrNotFound)

		code, _ := do(t, router, http.MethodPost, "/listings", helpers.CreateListingRequest{Title: "Guitar", StartingBid: 1, CategoryID: &categoryID})
		require.Equal(t, http.StatusNotFound, code)
	})
}

// Test RegisterHandler and IssueTokenHandler
func TestIdentityHandlers(t *testing.T) {
	t.Parallel()

	t.Run("register", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().Register(gomock.Any(), "carol", "secret123").Return(model.User{UserID: 1, Username: "carol"}, nil)

		code, resp := do(t, router, http.MethodPost, "/users", helpers.RegisterRequest{Username: "carol", Password: "secret123"})
		require.Equal(t, http.StatusCreated, code)
		require.NotContains(t, resp["data"].(map[string]any), "password_hash")
	})

	t.Run("register_password_too_long", func(t *testing.T) {
		t.Parallel()

		router, _, _ := newTestRouter(t, 0)
		code, resp := do(t, router, http.MethodPost, "/users", helpers.RegisterRequest{Username: "carol", Password: strings.Repeat("a", 73)})
		require.Equal(t, http.StatusBadRequest, code)
		require.Equal(t, "invalid request payload", resp["message"])
	})

	t.Run("register_duplicate", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().Register(gomock.Any(), "carol", "secret123").Return(model.User{}, auctionerrors.ErrUsernameTaken)

		code, _ := do(t, router, http.MethodPost, "/users", helpers.RegisterRequest{Username: "carol", Password: "secret123"})
		require.Equal(t, http.StatusConflict, code)
	})

	t.Run("issue_token", func(t *testing.T) {
		t.Parallel()

		expires := time.Now().Add(time.Hour).UTC()
		router, mockService, mockTokens := newTestRouter(t, 0)
		mockService.EXPECT().Authenticate(gomock.Any(), "carol", "secret123").Return(model.User{UserID: 1, Username: "carol"}, nil)
		mockTokens.EXPECT().Issue(uint(1)).Return("signed.token.value", expires, nil)

		code, resp := do(t, router, http.MethodPost, "/tokens", helpers.TokenRequest{Username: "carol", Password: "secret123"})
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "signed.token.value", resp["data"].(map[string]any)["token"])
	})

	t.Run("wrong_password", func(t *testing.T) {
		t.Parallel()

		router, mockService, _ := newTestRouter(t, 0)
		mockService.EXPECT().Authenticate(gomock.Any(), "carol", "nope").Return(model.User{}, auctionerrors.ErrInvalidCredentials)

		code, _ := do(t, router, http.MethodPost, "/tokens", helpers.TokenRequest{Username: "carol", Password: "nope"})
		require.Equal(t, http.StatusUnauthorized, code)
	})
}

// Test watchlist handlers
func TestWatchlistHandlers(t *testing.T) {
	t.Parallel()

	router, mockService, _ := newTestRouter(t, 7)
	gomock.InOrder(
		mockService.EXPECT().AddWatch(gomock.Any(), uint(7), uint(1)).Return(nil),
		mockService.EXPECT().GetWatchlist(gomock.Any(), uint(7)).Return([]model.PricedListing{{Listing: model.Listing{ListingID: 1}, CurrentPrice: 10}}, nil),
		mockService.EXPECT().RemoveWatch(gomock.Any(), uint(7), uint(1)).Return(nil),
		mockService.EXPECT().AddWatch(gomock.Any(), uint(7), uint(9)).Return(auctionerrors.ErrNotFound),
	)

	code, resp := do(t, router, http.MethodPut, "/listings/1/watch", nil)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, resp["data"].(map[string]any)["watching"])

	code, resp = do(t, router, http.MethodGet, "/me/watchlist", nil)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, resp["data"].([]any), 1)

	code, _ = do(t, router, http.MethodDelete, "/listings/1/watch", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, router, http.MethodPut, "/listings/9/watch", nil)
	require.Equal(t, http.StatusNotFound, code)
}

// Test category handlers
func TestCategoryHandlers(t *testing.T) {
	t.Parallel()

	router, mockService, _ := newTestRouter(t, 7)
	mockService.EXPECT().ListCategories(gomock.Any()).Return([]model.CategorySummary{
		{Category: model.Category{CategoryID: 1, Name: "Music"}, ActiveListingCount: 2},
	}, nil)
	mockService.EXPECT().ListingsByCategory(gomock.Any(), uint(5)).Return(nil, auctionerrors.ErrNotFound)
	mockService.EXPECT().CreateCategory(gomock.Any(), "Books").Return(model.Category{CategoryID: 2, Name: "Books"}, nil)

	code, resp := do(t, router, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, code)
	first := resp["data"].([]any)[0].(map[string]any)
	require.Equal(t, 2.0, first["active_listing_count"])
	require.Equal(t, "Music", first["name"])

	code, _ = do(t, router, http.MethodGet, "/categories/5/listings", nil)
	require.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, router, http.MethodPost, "/categories", helpers.CreateCategoryRequest{Name: "Books"})
	require.Equal(t, http.StatusCreated, code)
}
