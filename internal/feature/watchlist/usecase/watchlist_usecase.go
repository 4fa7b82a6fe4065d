// Package usecase implements the watchlist manager: a per-user membership
// set over listings, independent of bidding or ownership.
package usecase

import (
	"context"
	"fmt"

	auctionentity "auction_backend/internal/feature/auction/domain/entity"
)

// WatchRepository abstracts the persistence layer for the watch relation.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type WatchRepository interface {
	// Add inserts the membership row. Adding an existing pair is a no-op.
	Add(ctx context.Context, userID, listingID uint) error

	// Remove deletes the membership row. Removing an absent pair is a
	// no-op.
	Remove(ctx context.Context, userID, listingID uint) error

	// IsWatching reports whether the pair is present.
	IsWatching(ctx context.Context, userID, listingID uint) (bool, error)

	// ListingsFor retrieves the listings the user watches. No ordering is
	// guaranteed.
	ListingsFor(ctx context.Context, userID uint) ([]auctionentity.Listing, error)
}

// ListingReader resolves listing IDs so membership mutations against
// nonexistent listings fail with not-found instead of creating dangling
// rows. Implemented by the auction feature's listing repository.
type ListingReader interface {
	FindByID(ctx context.Context, id uint) (*auctionentity.Listing, error)
}

// watchlistUsecase implements the watchlist manager.
type watchlistUsecase struct {
	watches  WatchRepository
	listings ListingReader
}

// NewWatchlistUsecase creates a new instance of watchlistUsecase.
func NewWatchlistUsecase(watches WatchRepository, listings ListingReader) *watchlistUsecase {
	return &watchlistUsecase{watches: watches, listings: listings}
}

// Watch adds the listing to the user's watchlist. Idempotent: watching an
// already-watched listing succeeds without duplicating the row.
func (u *watchlistUsecase) Watch(ctx context.Context, userID, listingID uint) error {
	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		return err
	}
	if err := u.watches.Add(ctx, userID, listingID); err != nil {
		return fmt.Errorf("failed to add watch: %w", err)
	}
	return nil
}

// Unwatch removes the listing from the user's watchlist. Idempotent:
// removing a listing that is not watched succeeds.
func (u *watchlistUsecase) Unwatch(ctx context.Context, userID, listingID uint) error {
	if _, err := u.listings.FindByID(ctx, listingID); err != nil {
		return err
	}
	if err := u.watches.Remove(ctx, userID, listingID); err != nil {
		return fmt.Errorf("failed to remove watch: %w", err)
	}
	return nil
}

// IsWatching reports whether the user watches the listing.
func (u *watchlistUsecase) IsWatching(ctx context.Context, userID, listingID uint) (bool, error) {
	return u.watches.IsWatching(ctx, userID, listingID)
}

// Watched returns the listings on the user's watchlist.
func (u *watchlistUsecase) Watched(ctx context.Context, userID uint) ([]auctionentity.Listing, error) {
	return u.watches.ListingsFor(ctx, userID)
}
