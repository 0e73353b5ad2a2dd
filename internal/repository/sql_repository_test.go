package repository

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteRepo opens a private in-memory database. One connection keeps every
// statement on the same database.
func newSQLiteRepo(t *testing.T) *SQLRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(db))
	return NewSQLRepo(db)
}

func TestSQLRepo_Users(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	alice := seedUser(t, repo, "alice")
	require.NotZero(t, alice.UserID)

	_, err := repo.CreateUser(ctx, model.User{Username: "alice", PasswordHash: "x"})
	require.ErrorIs(t, err, auctionerrors.ErrUsernameTaken)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.UserID, got.UserID)

	_, err = repo.GetUser(ctx, 99)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)
}

func TestSQLRepo_CancelledContext(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	alice := seedUser(t, repo, "alice")

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := repo.GetUser(cancelled, alice.UserID)
	require.ErrorIs(t, err, context.Canceled)

	_, err = repo.ListListings(cancelled, model.ListingFilter{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestSQLRepo_ListingsAndCategories(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	owner := seedUser(t, repo, "owner")
	music, err := repo.CreateCategory(ctx, model.Category{Name: "Music"})
	require.NoError(t, err)

	guitar := seedListing(t, repo, owner.UserID, 100, &music.CategoryID)
	piano := seedListing(t, repo, owner.UserID, 300, &music.CategoryID)
	seedListing(t, repo, owner.UserID, 5, nil)

	_, err = repo.CreateListing(ctx, model.Listing{Title: "orphan", StartingBid: 1, ListedBy: 99})
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	inMusic, err := repo.ListListings(ctx, model.ListingFilter{Status: model.StatusActive, CategoryID: &music.CategoryID})
	require.NoError(t, err)
	require.Len(t, inMusic, 2)

	changed, err := repo.CloseListing(ctx, piano.ListingID)
	require.NoError(t, err)
	require.True(t, changed)

	changed, err = repo.CloseListing(ctx, piano.ListingID)
	require.NoError(t, err)
	require.False(t, changed)

	_, err = repo.CloseListing(ctx, 99)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	count, err := repo.CountListings(ctx, music.CategoryID, model.StatusActive)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	got, err := repo.GetListing(ctx, guitar.ListingID)
	require.NoError(t, err)
	require.Equal(t, model.StatusActive, got.Status)
	require.Equal(t, music.CategoryID, *got.CategoryID)
}

func TestSQLRepo_RecordBid(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	owner := seedUser(t, repo, "owner")
	listing := seedListing(t, repo, owner.UserID, 100, nil)

	var seenTop *model.Bid
	spy := func(_ model.Listing, top *model.Bid) error {
		seenTop = top
		return nil
	}

	first, err := repo.RecordBid(ctx, model.Bid{ListingID: listing.ListingID, BidderID: 2, Price: 100}, spy)
	require.NoError(t, err)
	require.Nil(t, seenTop)
	require.NotZero(t, first.BidID)

	_, err = repo.RecordBid(ctx, model.Bid{ListingID: listing.ListingID, BidderID: 3, Price: 150}, spy)
	require.NoError(t, err)
	require.NotNil(t, seenTop)
	require.Equal(t, int64(100), seenTop.Price)

	rejected := errors.New("nope")
	_, err = repo.RecordBid(ctx, model.Bid{ListingID: listing.ListingID, BidderID: 4, Price: 999}, func(model.Listing, *model.Bid) error {
		return rejected
	})
	require.ErrorIs(t, err, rejected)

	_, err = repo.RecordBid(ctx, model.Bid{ListingID: 99, BidderID: 4, Price: 999}, allow)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	bids, err := repo.GetBidsByListing(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Len(t, bids, 2, "rejected bid must not be stored")

	winning, err := repo.GetWinningBid(ctx, listing.ListingID)
	require.NoError(t, err)
	require.Equal(t, int64(150), winning.Price)
	require.Equal(t, uint(3), winning.BidderID)

	empty := seedListing(t, repo, owner.UserID, 1, nil)
	_, err = repo.GetWinningBid(ctx, empty.ListingID)
	require.ErrorIs(t, err, auctionerrors.ErrNoBids)

	_, err = repo.GetBidsByListing(ctx, 99)
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	byBidder, err := repo.GetListingsByBidder(ctx, 3)
	require.NoError(t, err)
	require.Len(t, byBidder, 1)
	require.Equal(t, listing.ListingID, byBidder[0].ListingID)
}

func TestSQLRepo_CommentsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	owner := seedUser(t, repo, "owner")
	listing := seedListing(t, repo, owner.UserID, 10, nil)

	base := time.Now().UTC().Add(-time.Hour)
	for i, text := range []string{"first", "second", "third"} {
		_, err := repo.AddComment(ctx, model.Comment{
			ListingID: listing.ListingID,
			AuthorID:  owner.UserID,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	_, err := repo.AddComment(ctx, model.Comment{ListingID: 99, AuthorID: owner.UserID, Text: "x"})
	require.ErrorIs(t, err, auctionerrors.ErrNotFound)

	page, err := repo.GetCommentsByListing(ctx, listing.ListingID, model.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "third", page[0].Text)
	require.Equal(t, "second", page[1].Text)

	page, err = repo.GetCommentsByListing(ctx, listing.ListingID, model.Page{Number: 2, Size: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "first", page[0].Text)

	page, err = repo.GetCommentsByListing(ctx, listing.ListingID, model.Page{Number: math.MaxInt/2 + 2, Size: 2})
	require.NoError(t, err)
	require.Empty(t, page, "an out-of-range page is past the end, not page one")
}

func TestSQLRepo_Watchlist(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	owner := seedUser(t, repo, "owner")
	watcher := seedUser(t, repo, "watcher")
	listing := seedListing(t, repo, owner.UserID, 10, nil)

	require.NoError(t, repo.AddWatch(ctx, watcher.UserID, listing.ListingID))
	require.NoError(t, repo.AddWatch(ctx, watcher.UserID, listing.ListingID))
	require.ErrorIs(t, repo.AddWatch(ctx, watcher.UserID, 99), auctionerrors.ErrNotFound)

	watchlist, err := repo.GetWatchlist(ctx, watcher.UserID)
	require.NoError(t, err)
	require.Len(t, watchlist, 1)
	require.Equal(t, listing.ListingID, watchlist[0].ListingID)

	watching, err := repo.IsWatching(ctx, watcher.UserID, listing.ListingID)
	require.NoError(t, err)
	require.True(t, watching)

	require.NoError(t, repo.RemoveWatch(ctx, watcher.UserID, listing.ListingID))
	require.NoError(t, repo.RemoveWatch(ctx, watcher.UserID, listing.ListingID))

	watching, err = repo.IsWatching(ctx, watcher.UserID, listing.ListingID)
	require.NoError(t, err)
	require.False(t, watching)
}
