package repository

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLRepo implements AuctionDB on top of gorm. Multi-step operations run in one
// transaction; on Postgres the listing row is locked with SELECT ... FOR UPDATE so a
// bid and a close on the same listing serialise.
type SQLRepo struct {
	db       *gorm.DB
	lockRows bool
}

// NewSQLRepo wraps an open gorm connection
func NewSQLRepo(db *gorm.DB) *SQLRepo {
	return &SQLRepo{
		db:       db,
		lockRows: db.Dialector.Name() == "postgres",
	}
}

// Migrate creates or updates the marketplace tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Listing{},
		&model.Bid{},
		&model.Comment{},
		&model.Watch{},
	)
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %v: %w", what, id, auctionerrors.ErrNotFound)
	}
	return fmt.Errorf("%s %v: %w", what, id, err)
}

// CreateUser stores a new user; a duplicate username yields ErrUsernameTaken
func (r *SQLRepo) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return model.User{}, fmt.Errorf("create user %s: %w", user.Username, auctionerrors.ErrUsernameTaken)
		}
		return model.User{}, fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return user, nil
}

// GetUser returns a user by id
func (r *SQLRepo) GetUser(ctx context.Context, userID uint) (model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Take(&user, "id = ?", userID).Error; err != nil {
		return model.User{}, notFound(err, "get user", userID)
	}
	return user, nil
}

// GetUserByUsername returns a user by username
func (r *SQLRepo) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Take(&user, "username = ?", username).Error; err != nil {
		return model.User{}, notFound(err, "get user", username)
	}
	return user, nil
}

// CreateCategory stores a new category
func (r *SQLRepo) CreateCategory(ctx context.Context, category model.Category) (model.Category, error) {
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return model.Category{}, fmt.Errorf("create category %s: %w", category.Name, err)
	}
	return category, nil
}

// GetCategory returns a category by id
func (r *SQLRepo) GetCategory(ctx context.Context, categoryID uint) (model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).Take(&category, "id = ?", categoryID).Error; err != nil {
		return model.Category{}, notFound(err, "get category", categoryID)
	}
	return category, nil
}

// ListCategories returns all categories ordered by name
func (r *SQLRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).Order("name").Order("id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// CountListings counts listings in a category with the given status
func (r *SQLRepo) CountListings(ctx context.Context, categoryID uint, status model.ListingStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Where("category_id = ? AND status = ?", categoryID, status).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count listings in category %d: %w", categoryID, err)
	}
	return n, nil
}

// CreateListing stores a new listing owned by an existing user
func (r *SQLRepo) CreateListing(ctx context.Context, listing model.Listing) (model.Listing, error) {
	if listing.Status == "" {
		listing.Status = model.StatusActive
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner model.User
		if err := tx.Take(&owner, "id = ?", listing.ListedBy).Error; err != nil {
			return notFound(err, "create listing for user", listing.ListedBy)
		}
		return tx.Create(&listing).Error
	})
	if err != nil {
		return model.Listing{}, err
	}
	return listing, nil
}

// GetListing returns a listing by id
func (r *SQLRepo) GetListing(ctx context.Context, listingID uint) (model.Listing, error) {
	var listing model.Listing
	if err := r.db.WithContext(ctx).Take(&listing, "id = ?", listingID).Error; err != nil {
		return model.Listing{}, notFound(err, "get listing", listingID)
	}
	return listing, nil
}

// ListListings returns listings matching filter, newest first
func (r *SQLRepo) ListListings(ctx context.Context, filter model.ListingFilter) ([]model.Listing, error) {
	q := r.db.WithContext(ctx).Model(&model.Listing{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ListedBy != nil {
		q = q.Where("listed_by = ?", *filter.ListedBy)
	}

	listings := make([]model.Listing, 0)
	if err := q.Order("created_at DESC").Order("id DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return listings, nil
}

// CloseListing flips an active listing to inactive with a conditional update, so only
// one caller ever observes the transition. It reports false when already inactive.
func (r *SQLRepo) CloseListing(ctx context.Context, listingID uint) (bool, error) {
	closed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Listing{}).
			Where("id = ? AND status = ?", listingID, model.StatusActive).
			Update("status", model.StatusInactive)
		if res.Error != nil {
			return fmt.Errorf("close listing %d: %w", listingID, res.Error)
		}
		if res.RowsAffected > 0 {
			closed = true
			return nil
		}

		var listing model.Listing
		if err := tx.Take(&listing, "id = ?", listingID).Error; err != nil {
			return notFound(err, "close listing", listingID)
		}
		return nil
	})
	return closed, err
}

func (r *SQLRepo) winningBid(tx *gorm.DB, listingID uint) (model.Bid, error) {
	var bid model.Bid
	err := tx.Where("listing_id = ?", listingID).
		Order("price DESC").
		Order("id ASC").
		Take(&bid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %d: %w", listingID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get winning bid for listing %d: %w", listingID, err)
	}
	return bid, nil
}

// RecordBid loads the listing and its top bid, runs guard and inserts the bid inside
// a single transaction
func (r *SQLRepo) RecordBid(ctx context.Context, bid model.Bid, guard BidGuard) (model.Bid, error) {
	if bid.CreatedAt.IsZero() {
		bid.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if r.lockRows {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var listing model.Listing
		if err := q.Take(&listing, "id = ?", bid.ListingID).Error; err != nil {
			return notFound(err, "record bid for listing", bid.ListingID)
		}

		var top *model.Bid
		highest, err := r.winningBid(tx, bid.ListingID)
		switch {
		case err == nil:
			top = &highest
		case !errors.Is(err, auctionerrors.ErrNoBids):
			return err
		}

		if guard != nil {
			if err := guard(listing, top); err != nil {
				return err
			}
		}
		return tx.Create(&bid).Error
	})
	if err != nil {
		return model.Bid{}, err
	}
	return bid, nil
}

// GetBidsByListing returns all bids for a listing in the order they were placed
func (r *SQLRepo) GetBidsByListing(ctx context.Context, listingID uint) ([]model.Bid, error) {
	bids := make([]model.Bid, 0)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing model.Listing
		if err := tx.Take(&listing, "id = ?", listingID).Error; err != nil {
			return notFound(err, "get bids for listing", listingID)
		}
		return tx.Where("listing_id = ?", listingID).Order("id").Find(&bids).Error
	})
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// GetWinningBid returns the highest bid for a listing
func (r *SQLRepo) GetWinningBid(ctx context.Context, listingID uint) (model.Bid, error) {
	return r.winningBid(r.db.WithContext(ctx), listingID)
}

// GetListingsByBidder returns every listing the user has bid on, by listing id
func (r *SQLRepo) GetListingsByBidder(ctx context.Context, userID uint) ([]model.Listing, error) {
	db := r.db.WithContext(ctx)
	listings := make([]model.Listing, 0)
	err := db.
		Where("id IN (?)", db.Model(&model.Bid{}).Select("listing_id").Where("bidder_id = ?", userID)).
		Order("id").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("get listings for bidder %d: %w", userID, err)
	}
	return listings, nil
}

// AddComment appends a comment to an existing listing
func (r *SQLRepo) AddComment(ctx context.Context, comment model.Comment) (model.Comment, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing model.Listing
		if err := tx.Take(&listing, "id = ?", comment.ListingID).Error; err != nil {
			return notFound(err, "add comment to listing", comment.ListingID)
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// GetCommentsByListing returns one page of a listing's comments, newest first
func (r *SQLRepo) GetCommentsByListing(ctx context.Context, listingID uint, page model.Page) ([]model.Comment, error) {
	q := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Order("id DESC")
	if page.Size > 0 {
		q = q.Limit(page.Size).Offset(page.Offset())
	}

	comments := make([]model.Comment, 0)
	if err := q.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("get comments for listing %d: %w", listingID, err)
	}
	return comments, nil
}

// AddWatch puts a listing on the user's watchlist. Adding twice keeps one row.
func (r *SQLRepo) AddWatch(ctx context.Context, userID, listingID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listing model.Listing
		if err := tx.Take(&listing, "id = ?", listingID).Error; err != nil {
			return notFound(err, "watch listing", listingID)
		}

		watch := model.Watch{UserID: userID, ListingID: listingID, CreatedAt: time.Now().UTC()}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&watch).Error; err != nil {
			return fmt.Errorf("watch listing %d: %w", listingID, err)
		}
		return nil
	})
}

// RemoveWatch drops a listing from the watchlist; absent rows are ignored
func (r *SQLRepo) RemoveWatch(ctx context.Context, userID, listingID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&model.Watch{}).Error
	if err != nil {
		return fmt.Errorf("unwatch listing %d: %w", listingID, err)
	}
	return nil
}

// IsWatching reports whether the listing is on the user's watchlist
func (r *SQLRepo) IsWatching(ctx context.Context, userID, listingID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Watch{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check watch on listing %d: %w", listingID, err)
	}
	return n > 0, nil
}

// GetWatchlist returns the user's watched listings, most recently watched first
func (r *SQLRepo) GetWatchlist(ctx context.Context, userID uint) ([]model.Listing, error) {
	listings := make([]model.Listing, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN watchlist ON watchlist.listing_id = listings.id").
		Where("watchlist.user_id = ?", userID).
		Order("watchlist.created_at DESC").
		Order("listings.id DESC").
		Find(&listings).Error
	if err != nil {
		return nil, fmt.Errorf("get watchlist for user %d: %w", userID, err)
	}
	return listings, nil
}
