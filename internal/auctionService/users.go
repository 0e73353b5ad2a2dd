package auction

import (
	"auction-marketplace/internal/auctionerrors"
	"auction-marketplace/internal/identity"
	model "auction-marketplace/internal/models"
	"context"
	"errors"
	"fmt"
	"regexp"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.@+-]{3,64}$`)

// bcrypt only reads the first 72 bytes and rejects longer input
const (
	minPasswordLength = 6
	maxPasswordBytes  = 72
)

// Register creates a user with a hashed password
func (s *AuctionService) Register(ctx context.Context, username, password string) (model.User, error) {
	if !usernamePattern.MatchString(username) {
		return model.User{}, fmt.Errorf("service: %w - username must be 3-64 letters, digits or _.@+-", auctionerrors.ErrValidation)
	}
	if len(password) < minPasswordLength {
		return model.User{}, fmt.Errorf("service: %w - password shorter than %d characters", auctionerrors.ErrValidation, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return model.User{}, fmt.Errorf("service: %w - password longer than %d bytes", auctionerrors.ErrValidation, maxPasswordBytes)
	}

	hash, err := identity.HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, model.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to register %q: %w", username, err)
	}

	return user, nil
}

// Authenticate checks a username/password pair. Unknown users and wrong passwords
// produce the same error.
func (s *AuctionService) Authenticate(ctx context.Context, username, password string) (model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if errors.Is(err, auctionerrors.ErrNotFound) {
		return model.User{}, fmt.Errorf("service: %w", auctionerrors.ErrInvalidCredentials)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to load user %q: %w", username, err)
	}

	if err := identity.CheckPassword(user.PasswordHash, password); err != nil {
		return model.User{}, fmt.Errorf("service: %w", err)
	}

	return user, nil
}
