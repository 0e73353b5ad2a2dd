package repository

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/pricing"
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// BidGuard decides whether a bid may be stored. It runs while the store holds the
// listing exclusively, so listing status and highest bid cannot change underneath it.
// highest is nil when the listing has no bids yet.
type BidGuard func(listing model.Listing, highest *model.Bid) error

// AuctionDB defines the storage interface for the marketplace
type AuctionDB interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUser(ctx context.Context, userID uint) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	CreateCategory(ctx context.Context, category model.Category) (model.Category, error)
	GetCategory(ctx context.Context, categoryID uint) (model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CountListings(ctx context.Context, categoryID uint, status model.ListingStatus) (int64, error)

	CreateListing(ctx context.Context, listing model.Listing) (model.Listing, error)
	GetListing(ctx context.Context, listingID uint) (model.Listing, error)
	ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error)
	CloseListing(ctx context.Context, listingID uint) (bool, error)

	RecordBid(ctx context.Context, bid model.Bid, guard BidGuard) (model.Bid, error)
	GetBidsByListing(ctx context.Context, listingID uint) ([]model.Bid, error)
	GetWinningBid(ctx context.Context, listingID uint) (model.Bid, error)
	GetListingsByBidder(ctx context.Context, userID uint) ([]model.Listing, error)

	AddComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetCommentsByListing(ctx context.Context, listingID uint, page model.Page) ([]model.Comment, error)

	AddWatch(ctx context.Context, userID, listingID uint) error
	RemoveWatch(ctx context.Context, userID, listingID uint) error
	IsWatching(ctx context.Context, userID, listingID uint) (bool, error)
	GetWatchlist(ctx context.Context, userID uint) ([]model.Listing, error)
}

type watchKey struct {
	userID    uint
	listingID uint
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
// A single mutex makes every method one atomic unit of work.
type MemoryRepo struct {
	mu         sync.RWMutex
	users      map[uint]model.User
	categories map[uint]model.Category
	listings   map[uint]model.Listing
	bids       map[uint][]model.Bid     // key: listingID -> bids in insert order
	comments   map[uint][]model.Comment // key: listingID -> comments in insert order
	watches    map[watchKey]time.Time
	nextID     map[string]uint
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:      make(map[uint]model.User),
		categories: make(map[uint]model.Category),
		listings:   make(map[uint]model.Listing),
		bids:       make(map[uint][]model.Bid),
		comments:   make(map[uint][]model.Comment),
		watches:    make(map[watchKey]time.Time),
		nextID:     make(map[string]uint),
	}
}

// allocID hands out per-table ids starting at 1. Caller holds mu.
func (r *MemoryRepo) allocID(table string) uint {
	r.nextID[table]++
	return r.nextID[table]
}

func stamp(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// CreateUser stores a new user; usernames are unique
func (r *MemoryRepo) CreateUser(_ context.Context, user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return model.User{}, fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrUsernameTaken)
		}
	}

	user.UserID = r.allocID("users")
	user.CreatedAt = stamp(user.CreatedAt)
	r.users[user.UserID] = user
	return user, nil
}

// GetUser returns a user by id
func (r *MemoryRepo) GetUser(_ context.Context, userID uint) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %d: %w", userID, auctionerrors.ErrNotFound)
	}
	return user, nil
}

// GetUserByUsername returns a user by username
func (r *MemoryRepo) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user %s: %w", username, auctionerrors.ErrNotFound)
}

// CreateCategory stores a new category
func (r *MemoryRepo) CreateCategory(_ context.Context, category model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category.CategoryID = r.allocID("categories")
	r.categories[category.CategoryID] = category
	return category, nil
}

// GetCategory returns a category by id
func (r *MemoryRepo) GetCategory(_ context.Context, categoryID uint) (model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[categoryID]
	if !ok {
		return model.Category{}, fmt.Errorf("get category %d: %w", categoryID, auctionerrors.ErrNotFound)
	}
	return category, nil
}

// ListCategories returns all categories ordered by name
func (r *MemoryRepo) ListCategories(_ context.Context) ([]model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Name == categories[j].Name {
			return categories[i].CategoryID < categories[j].CategoryID
		}
		return categories[i].Name < categories[j].Name
	})
	return categories, nil
}

// CountListings counts listings in a category with the given status
func (r *MemoryRepo) CountListings(_ context.Context, categoryID uint, status model.ListingStatus) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, l := range r.listings {
		if l.CategoryID != nil && *l.CategoryID == categoryID && l.Status == status {
			n++
		}
	}
	return n, nil
}

// CreateListing stores a new listing
func (r *MemoryRepo) CreateListing(_ context.Context, listing model.Listing) (model.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[listing.ListedBy]; !ok {
		return model.Listing{}, fmt.Errorf("create listing for user %d: %w", listing.ListedBy, auctionerrors.ErrNotFound)
	}

	listing.ListingID = r.allocID("listings")
	listing.CreatedAt = stamp(listing.CreatedAt)
	if listing.Status == "" {
		listing.Status = model.StatusActive
	}
	r.listings[listing.ListingID] = listing
	return listing, nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(_ context.Context, listingID uint) (model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.Listing{}, fmt.Errorf("get listing %d: %w", listingID, auctionerrors.ErrNotFound)
	}
	return listing, nil
}

func matches(l model.Listing, filter model.ListingFilter) bool {
	if filter.Status != "" && l.Status != filter.Status {
		return false
	}
	if filter.CategoryID != nil && (l.CategoryID == nil || *l.CategoryID != *filter.CategoryID) {
		return false
	}
	if filter.ListedBy != nil && l.ListedBy != *filter.ListedBy {
		return false
	}
	return true
}

// newestFirst orders listings by creation time, newest first, falling back to id
func newestFirst(listings []model.Listing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ListingID > listings[j].ListingID
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

// ListListings returns listings matching filter, newest first
func (r *MemoryRepo) ListListings(_ context.Context, filter model.ListingFilter) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for _, l := range r.listings {
		if matches(l, filter) {
			listings = append(listings, l)
		}
	}
	newestFirst(listings)
	return listings, nil
}

// CloseListing flips an active listing to inactive. It reports false when the listing
// was already inactive.
func (r *MemoryRepo) CloseListing(_ context.Context, listingID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return false, fmt.Errorf("close listing %d: %w", listingID, auctionerrors.ErrNotFound)
	}
	if !listing.IsActive() {
		return false, nil
	}

	listing.Status = model.StatusInactive
	r.listings[listingID] = listing
	return true, nil
}

// highestLocked returns the top bid of a listing. Caller holds mu.
func (r *MemoryRepo) highestLocked(listingID uint) (model.Bid, bool) {
	return pricing.HighestBid(r.bids[listingID])
}

// RecordBid checks the bid with guard and stores it, all under the write lock
func (r *MemoryRepo) RecordBid(_ context.Context, bid model.Bid, guard BidGuard) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[bid.ListingID]
	if !ok {
		return model.Bid{}, fmt.Errorf("record bid for listing %d: %w", bid.ListingID, auctionerrors.ErrNotFound)
	}

	var top *model.Bid
	if highest, ok := r.highestLocked(bid.ListingID); ok {
		top = &highest
	}
	if guard != nil {
		if err := guard(listing, top); err != nil {
			return model.Bid{}, err
		}
	}

	bid.BidID = r.allocID("bids")
	bid.CreatedAt = stamp(bid.CreatedAt)
	r.bids[bid.ListingID] = append(r.bids[bid.ListingID], bid)
	return bid, nil
}

// GetBidsByListing returns all bids for a listing in the order they were placed
func (r *MemoryRepo) GetBidsByListing(_ context.Context, listingID uint) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.listings[listingID]; !ok {
		return nil, fmt.Errorf("get bids for listing %d: %w", listingID, auctionerrors.ErrNotFound)
	}
	return append([]model.Bid{}, r.bids[listingID]...), nil
}

// GetWinningBid returns the highest bid for a listing
func (r *MemoryRepo) GetWinningBid(_ context.Context, listingID uint) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	winning, ok := r.highestLocked(listingID)
	if !ok {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %d: %w", listingID, auctionerrors.ErrNoBids)
	}
	return winning, nil
}

// GetListingsByBidder returns every listing the user has bid on, by listing id
func (r *MemoryRepo) GetListingsByBidder(_ context.Context, userID uint) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.Listing, 0)
	for listingID, bids := range r.bids {
		for _, b := range bids {
			if b.BidderID == userID {
				listings = append(listings, r.listings[listingID])
				break
			}
		}
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ListingID < listings[j].ListingID })
	return listings, nil
}

// AddComment appends a comment to a listing
func (r *MemoryRepo) AddComment(_ context.Context, comment model.Comment) (model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[comment.ListingID]; !ok {
		return model.Comment{}, fmt.Errorf("add comment to listing %d: %w", comment.ListingID, auctionerrors.ErrNotFound)
	}

	comment.CommentID = r.allocID("comments")
	comment.CreatedAt = stamp(comment.CreatedAt)
	r.comments[comment.ListingID] = append(r.comments[comment.ListingID], comment)
	return comment, nil
}

// GetCommentsByListing returns one page of a listing's comments, newest first
func (r *MemoryRepo) GetCommentsByListing(_ context.Context, listingID uint, page model.Page) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	comments := append([]model.Comment{}, r.comments[listingID]...)
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].CommentID > comments[j].CommentID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})

	if page.Size <= 0 {
		return comments, nil
	}
	start := page.Offset()
	if start < 0 || start >= len(comments) {
		return []model.Comment{}, nil
	}
	end := start + page.Size
	if end > len(comments) {
		end = len(comments)
	}
	return comments[start:end], nil
}

// AddWatch puts a listing on the user's watchlist. Adding twice keeps one entry.
func (r *MemoryRepo) AddWatch(_ context.Context, userID, listingID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.listings[listingID]; !ok {
		return fmt.Errorf("watch listing %d: %w", listingID, auctionerrors.ErrNotFound)
	}

	key := watchKey{userID: userID, listingID: listingID}
	if _, ok := r.watches[key]; !ok {
		r.watches[key] = time.Now().UTC()
	}
	return nil
}

// RemoveWatch drops a listing from the watchlist; absent entries are ignored
func (r *MemoryRepo) RemoveWatch(_ context.Context, userID, listingID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.watches, watchKey{userID: userID, listingID: listingID})
	return nil
}

// IsWatching reports whether the listing is on the user's watchlist
func (r *MemoryRepo) IsWatching(_ context.Context, userID, listingID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.watches[watchKey{userID: userID, listingID: listingID}]
	return ok, nil
}

// GetWatchlist returns the user's watched listings, most recently watched first
func (r *MemoryRepo) GetWatchlist(_ context.Context, userID uint) ([]model.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type watched struct {
		listing model.Listing
		at      time.Time
	}
	var entries []watched
	for key, at := range r.watches {
		if key.userID != userID {
			continue
		}
		if l, ok := r.listings[key.listingID]; ok {
			entries = append(entries, watched{listing: l, at: at})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].at.Equal(entries[j].at) {
			return entries[i].listing.ListingID > entries[j].listing.ListingID
		}
		return entries[i].at.After(entries[j].at)
	})

	listings := make([]model.Listing, 0, len(entries))
	for _, e := range entries {
		listings = append(listings, e.listing)
	}
	return listings, nil
}
