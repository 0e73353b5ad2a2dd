package integrationtests

import (
	auction "auction-marketplace/internal/auctionService"
	"auction-marketplace/internal/config"
	"auction-marketplace/internal/database"
	"auction-marketplace/internal/identity"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"
	"auction-marketplace/services/auction/helpers"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// drivers lists the storage backends every API test runs against
var drivers = []string{config.DriverMemory, config.DriverSQLite}

// SetupTestRouter initializes the full router over the given storage driver.
func SetupTestRouter(t *testing.T, driver string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var repo repository.AuctionDB
	switch driver {
	case config.DriverSQLite:
		db, err := database.Open(config.Config{DBDriver: config.DriverSQLite, DatabaseURL: ":memory:"})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		t.Cleanup(func() { _ = sqlDB.Close() })
		repo = repository.NewSQLRepo(db)
	default:
		repo = repository.NewMemoryRepo()
	}

	service := auction.NewAuctionService(repo, 2)
	tokens := identity.NewTokenManager("integration-secret", time.Hour)
	return server.SetupRouter(service, tokens, server.Options{RequestTimeout: 5 * time.Second})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the
// response envelope. A non-empty token is sent as a bearer credential.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// account is a registered user with a live token
type account struct {
	ID    uint
	Token string
}

// SignUp registers a user and logs them in
func SignUp(t *testing.T, router *gin.Engine, username string) account {
	t.Helper()

	creds := helpers.RegisterRequest{Username: username, Password: "password-" + username}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/users", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/tokens", "", helpers.TokenRequest(creds))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := resp["data"].(map[string]any)
	return account{ID: uint(data["user_id"].(float64)), Token: data["token"].(string)}
}

// CreateListing posts a listing owned by seller and returns its id
func CreateListing(t *testing.T, router *gin.Engine, seller account, req helpers.CreateListingRequest) uint {
	t.Helper()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/listings", seller.Token, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return uint(resp["data"].(map[string]any)["listing_id"].(float64))
}

func listingPath(id uint, suffix string) string {
	return fmt.Sprintf("/listings/%d%s", id, suffix)
}
