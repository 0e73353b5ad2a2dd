package auction

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 64
	maxDescriptionLength = 500
	maxImageURLLength    = 200
)

// CreateListingInput carries the user-supplied fields of a new listing
type CreateListingInput struct {
	Title       string
	Description string
	StartingBid int64
	ImageURL    *string
	CategoryID  *uint
}

func (in CreateListingInput) validate() error {
	title := strings.TrimSpace(in.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return fmt.Errorf("service: %w - title must be 1-%d characters", auctionerrors.ErrValidation, maxTitleLength)
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionLength {
		return fmt.Errorf("service: %w - description longer than %d characters", auctionerrors.ErrValidation, maxDescriptionLength)
	}
	if in.StartingBid < 1 {
		return fmt.Errorf("service: %w - starting bid must be at least 1", auctionerrors.ErrValidation)
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		raw := *in.ImageURL
		if len(raw) > maxImageURLLength {
			return fmt.Errorf("service: %w - image URL longer than %d characters", auctionerrors.ErrValidation, maxImageURLLength)
		}
		u, err := url.ParseRequestURI(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("service: %w - image URL must be an absolute http(s) URL", auctionerrors.ErrValidation)
		}
	}
	return nil
}

// CreateListing stores a new active listing owned by actorID
func (s *AuctionService) CreateListing(ctx context.Context, in CreateListingInput, actorID uint) (model.Listing, error) {
	if actorID == 0 {
		return model.Listing{}, fmt.Errorf("service: %w - missing owner", auctionerrors.ErrValidation)
	}
	if err := in.validate(); err != nil {
		return model.Listing{}, err
	}
	if in.CategoryID != nil {
		if _, err := s.repo.GetCategory(ctx, *in.CategoryID); err != nil {
			return model.Listing{}, fmt.Errorf("service: failed to load category %d: %w", *in.CategoryID, err)
		}
	}

	imageURL := in.ImageURL
	if imageURL != nil && *imageURL == "" {
		imageURL = nil
	}

	listing, err := s.repo.CreateListing(ctx, model.Listing{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		StartingBid: in.StartingBid,
		ImageURL:    imageURL,
		CategoryID:  in.CategoryID,
		ListedBy:    actorID,
		Status:      model.StatusActive,
		CreatedAt:   s.now(),
	})
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to create listing: %w", err)
	}
	return listing, nil
}

// GetListing returns a listing with its current price
func (s *AuctionService) GetListing(ctx context.Context, listingID uint) (model.PricedListing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return model.PricedListing{}, fmt.Errorf("service: failed to load listing %d: %w", listingID, err)
	}

	priced, err := s.priced(ctx, []model.Listing{listing})
	if err != nil {
		return model.PricedListing{}, err
	}
	return priced[0], nil
}

// ListListings returns listings in the given status, newest first. An empty status
// means active.
func (s *AuctionService) ListListings(ctx context.Context, status model.ListingStatus) ([]model.PricedListing, error) {
	if status == "" {
		status = model.StatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown status %q", auctionerrors.ErrValidation, status)
	}

	listings, err := s.repo.ListListings(ctx, model.ListingFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return s.priced(ctx, listings)
}

// ListingsByOwner returns every listing created by a user, in any status
func (s *AuctionService) ListingsByOwner(ctx context.Context, userID uint) ([]model.PricedListing, error) {
	if userID == 0 {
		return nil, fmt.Errorf("service: %w - empty user ID", auctionerrors.ErrValidation)
	}

	listings, err := s.repo.ListListings(ctx, model.ListingFilter{ListedBy: &userID})
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings of user %d: %w", userID, err)
	}
	return s.priced(ctx, listings)
}

// CloseListing ends the auction. Only the owner may close; closing an inactive
// listing succeeds without changing anything.
func (s *AuctionService) CloseListing(ctx context.Context, listingID, actorID uint) (model.Listing, error) {
	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to load listing %d: %w", listingID, err)
	}
	if listing.ListedBy != actorID {
		return model.Listing{}, fmt.Errorf("service: %w - user %d does not own listing %d", auctionerrors.ErrForbidden, actorID, listingID)
	}

	if _, err := s.repo.CloseListing(ctx, listingID); err != nil {
		return model.Listing{}, fmt.Errorf("service: failed to close listing %d: %w", listingID, err)
	}

	listing.Status = model.StatusInactive
	return listing, nil
}
