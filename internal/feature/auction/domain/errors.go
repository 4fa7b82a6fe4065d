// Package domain defines domain-level errors for the auction feature.
package domain

import "errors"

// Domain errors for auction operations. All of them are recoverable: the
// handler maps them to a user-visible message and the auction state is
// left untouched.
var (
	// ErrListingNotFound indicates that no listing exists with the given ID.
	ErrListingNotFound = errors.New("listing not found")

	// ErrInvalidBid indicates a malformed, non-positive, or too-low bid
	// amount. A bid equal to the current price is too low; the floor is
	// strict.
	ErrInvalidBid = errors.New("bid must exceed the current price")

	// ErrAuctionClosed indicates an operation that requires an active
	// listing was attempted on a closed one.
	ErrAuctionClosed = errors.New("auction is closed")

	// ErrNotOwner indicates that someone other than the listing owner
	// attempted to close the auction.
	ErrNotOwner = errors.New("only the owner can close the auction")

	// ErrNoBids indicates that a listing has received no bids yet.
	ErrNoBids = errors.New("no bids placed on listing")
)
