package auction

import (
	"auction-marketplace/internal/auctionerrors"
	model "auction-marketplace/internal/models"
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

const maxCommentLength = 500

// AddComment appends a trimmed, non-empty comment to a listing
func (s *AuctionService) AddComment(ctx context.Context, listingID, authorID uint, text string) (model.Comment, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Comment{}, fmt.Errorf("service: %w", auctionerrors.ErrEmptyText)
	}
	if utf8.RuneCountInString(text) > maxCommentLength {
		return model.Comment{}, fmt.Errorf("service: %w - comment longer than %d characters", auctionerrors.ErrValidation, maxCommentLength)
	}
	if listingID == 0 || authorID == 0 {
		return model.Comment{}, fmt.Errorf("service: %w - missing listingID or authorID", auctionerrors.ErrValidation)
	}

	comment, err := s.repo.AddComment(ctx, model.Comment{
		ListingID: listingID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: s.now(),
	})
	if err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to add comment to listing %d: %w", listingID, err)
	}
	return comment, nil
}

// GetComments returns one page of a listing's comments, newest first. Pages start at 1.
func (s *AuctionService) GetComments(ctx context.Context, listingID uint, page int) ([]model.Comment, error) {
	if page < 1 {
		page = 1
	}
	if page > math.MaxInt/s.commentsPageSize {
		return nil, fmt.Errorf("service: %w - page %d out of range", auctionerrors.ErrValidation, page)
	}

	if _, err := s.repo.GetListing(ctx, listingID); err != nil {
		return nil, fmt.Errorf("service: failed to load listing %d: %w", listingID, err)
	}

	comments, err := s.repo.GetCommentsByListing(ctx, listingID, model.Page{Number: page, Size: s.commentsPageSize})
	if err != nil {
		return nil, fmt.Errorf("service: failed to get comments for listing %d: %w", listingID, err)
	}
	return comments, nil
}
