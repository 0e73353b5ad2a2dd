package helpers

// Request/Response DTOs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,max=72"`
}

type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
	UserID    uint   `json:"user_id"`
}

type UserResponse struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type CreateListingRequest struct {
	Title       string  `json:"title" binding:"required,max=64"`
	Description string  `json:"description" binding:"max=500"`
	StartingBid int64   `json:"starting_bid" binding:"required,gte=1"`
	ImageURL    *string `json:"image_url" binding:"omitempty,max=200"`
	CategoryID  *uint   `json:"category_id" binding:"omitempty,gt=0"`
}

type PlaceBidRequest struct {
	Price int64 `json:"price" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID     uint   `json:"bid_id"`
	ListingID uint   `json:"listing_id"`
	BidderID  uint   `json:"bidder_id"`
	Price     int64  `json:"price"`
	CreatedAt string `json:"created_at"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
