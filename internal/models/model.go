package models

import (
	"math"
	"time"
)

// ListingStatus is the lifecycle state of a listing. Only active -> inactive is allowed.
type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusInactive ListingStatus = "inactive"
)

// Valid reports whether s is a known status.
func (s ListingStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// User represents a participant in the marketplace
type User struct {
	UserID       uint      `json:"user_id" gorm:"primaryKey;column:id"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }

// Category groups listings; a listing may have none
type Category struct {
	CategoryID uint   `json:"category_id" gorm:"primaryKey;column:id"`
	Name       string `json:"name" gorm:"size:64;not null"`
}

func (Category) TableName() string { return "categories" }

// Listing represents an auction created by a user
type Listing struct {
	ListingID   uint          `json:"listing_id" gorm:"primaryKey;column:id"`
	Title       string        `json:"title" gorm:"size:64;not null"`
	Description string        `json:"description" gorm:"size:500;not null"`
	StartingBid int64         `json:"starting_bid" gorm:"not null"`
	ImageURL    *string       `json:"image_url,omitempty" gorm:"size:200"`
	CategoryID  *uint         `json:"category_id,omitempty" gorm:"index"`
	ListedBy    uint          `json:"listed_by" gorm:"index;not null"`
	Status      ListingStatus `json:"status" gorm:"size:8;not null;default:active;index"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (Listing) TableName() string { return "listings" }

// IsActive reports whether the listing still accepts bids
func (l Listing) IsActive() bool {
	return l.Status == StatusActive
}

// Bid represents a user's bid on a listing. Bids are never updated or deleted.
type Bid struct {
	BidID     uint      `json:"bid_id" gorm:"primaryKey;column:id"`
	ListingID uint      `json:"listing_id" gorm:"index;not null"`
	BidderID  uint      `json:"bidder_id" gorm:"index;not null"`
	Price     int64     `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Bid) TableName() string { return "bids" }

// Comment is an append-only note left on a listing
type Comment struct {
	CommentID uint      `json:"comment_id" gorm:"primaryKey;column:id"`
	ListingID uint      `json:"listing_id" gorm:"index;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index;not null"`
	Text      string    `json:"text" gorm:"size:500;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

func (Comment) TableName() string { return "comments" }

// Watch is one row of a user's watchlist
type Watch struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	ListingID uint      `json:"listing_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (Watch) TableName() string { return "watchlist" }

// ListingFilter narrows listing queries. Zero values mean "any".
type ListingFilter struct {
	Status     ListingStatus
	CategoryID *uint
	ListedBy   *uint
}

// PricedListing is a listing together with its derived current price
type PricedListing struct {
	Listing
	CurrentPrice int64 `json:"current_price"`
}

// CategorySummary is a category with its number of active listings
type CategorySummary struct {
	Category
	ActiveListingCount int64 `json:"active_listing_count"`
}

// Page selects a window of a newest-first result set. Number starts at 1.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows to skip for p. It saturates at math.MaxInt
// instead of overflowing, so an absurd page is simply past the end.
func (p Page) Offset() int {
	if p.Number < 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}
