// Package usecase implements the business rules of the auction feature:
// the bid floor, the Active to Closed transition, and the derived winner.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"auction_backend/internal/feature/auction/domain"
	"auction_backend/internal/feature/auction/domain/entity"
)

// ListingRepository abstracts the persistence layer for listings.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type ListingRepository interface {
	// Create persists a new listing.
	Create(ctx context.Context, listing *entity.Listing) error

	// FindByID retrieves a listing by ID. It returns
	// domain.ErrListingNotFound when no such listing exists.
	FindByID(ctx context.Context, id uint) (*entity.Listing, error)

	// FindActive retrieves all active listings, newest first.
	FindActive(ctx context.Context) ([]entity.Listing, error)

	// Deactivate sets is_active to false for the listing.
	Deactivate(ctx context.Context, id uint) error
}

// BidRepository abstracts the persistence layer for bids.
type BidRepository interface {
	// Place inserts the bid, re-checking the highest amount against the
	// floor inside the same transaction so that two bids racing past the
	// usecase-level check cannot both land. It returns domain.ErrInvalidBid
	// when the amount no longer exceeds the floor.
	Place(ctx context.Context, bid *entity.Bid, startingBid int64) error

	// HighestAmount returns the maximum bid amount for the listing, or
	// domain.ErrNoBids when none exist.
	HighestAmount(ctx context.Context, listingID uint) (int64, error)

	// HighestBid returns the bid holding the maximum amount, earliest
	// first on a tie, or domain.ErrNoBids when none exist.
	HighestBid(ctx context.Context, listingID uint) (*entity.Bid, error)
}

// CommentRepository abstracts the persistence layer for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ByListing(ctx context.Context, listingID uint) ([]entity.Comment, error)
}

// WatchChecker reports watchlist membership for the listing detail bundle.
// Implemented by the watchlist feature.
type WatchChecker interface {
	IsWatching(ctx context.Context, userID, listingID uint) (bool, error)
}

// ListingDetail bundles everything the listing page needs in one read.
type ListingDetail struct {
	Listing      entity.Listing
	CurrentPrice int64
	Comments     []entity.Comment
	IsWatched    bool
	IsWinner     bool
}

// auctionUsecase implements the auction engine.
type auctionUsecase struct {
	listings ListingRepository
	bids     BidRepository
	comments CommentRepository
	watchers WatchChecker
}

// NewAuctionUsecase creates a new instance of auctionUsecase.
func NewAuctionUsecase(listings ListingRepository, bids BidRepository,
	comments CommentRepository, watchers WatchChecker) *auctionUsecase {
	return &auctionUsecase{
		listings: listings,
		bids:     bids,
		comments: comments,
		watchers: watchers,
	}
}

// ActiveListings returns all open auctions, newest first.
func (u *auctionUsecase) ActiveListings(ctx context.Context) ([]entity.Listing, error) {
	return u.listings.FindActive(ctx)
}

// CreateListing opens a new auction owned by ownerID. The starting bid is
// in cents and must be positive.
func (u *auctionUsecase) CreateListing(ctx context.Context, ownerID uint, title, description string,
	startingBid int64, imageURL *string, categoryID *uint) (*entity.Listing, error) {
	if strings.TrimSpace(title) == "" {
		return nil, errors.New("empty title")
	}
	if startingBid <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	listing := &entity.Listing{
		Title:       strings.TrimSpace(title),
		Description: description,
		StartingBid: startingBid,
		ImageURL:    imageURL,
		CategoryID:  categoryID,
		OwnerID:     ownerID,
		IsActive:    true,
	}
	if err := u.listings.Create(ctx, listing); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

// CurrentPrice returns the highest bid amount for the listing, or the
// starting bid when no bids exist. This, not the starting bid, is the
// floor for new bids.
func (u *auctionUsecase) CurrentPrice(ctx context.Context, listing *entity.Listing) (int64, error) {
	max, err := u.bids.HighestAmount(ctx, listing.ID)
	if errors.Is(err, domain.ErrNoBids) {
		return listing.StartingBid, nil
	}
	if err != nil {
		return 0, err
	}
	return max, nil
}

// PlaceBid records a bid by bidderID on the listing. The returned price is
// the current price after the call: the new amount on success, the
// unchanged price when the bid is rejected. Rejections come back as
// domain.ErrInvalidBid or domain.ErrAuctionClosed alongside that price;
// the auction stays open and biddable either way.
func (u *auctionUsecase) PlaceBid(ctx context.Context, listingID, bidderID uint, amount int64) (int64, error) {
	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return 0, err
	}

	price, err := u.CurrentPrice(ctx, listing)
	if err != nil {
		return 0, fmt.Errorf("failed to read current price: %w", err)
	}
	if !listing.IsActive {
		return price, domain.ErrAuctionClosed
	}
	if amount <= 0 {
		return price, domain.ErrInvalidAmount
	}
	// Strict inequality: a bid equal to the current price is rejected.
	if amount <= price {
		return price, domain.ErrInvalidBid
	}

	bid := &entity.Bid{ListingID: listing.ID, BidderID: bidderID, Amount: amount}
	if err := u.bids.Place(ctx, bid, listing.StartingBid); err != nil {
		if errors.Is(err, domain.ErrInvalidBid) {
			// A competing bid landed between the check and the insert.
			// Report the fresh price so the caller can rebid.
			if fresh, perr := u.CurrentPrice(ctx, listing); perr == nil {
				price = fresh
			}
			return price, domain.ErrInvalidBid
		}
		return 0, fmt.Errorf("failed to place bid: %w", err)
	}
	return amount, nil
}

// Close transitions the listing from Active to Closed. Only the owner may
// close, and only once: a second close reports domain.ErrAuctionClosed
// with no state change. It returns the winning bid (nil when there were
// none) and the final price. The winner is derived from the bids, never
// stored.
func (u *auctionUsecase) Close(ctx context.Context, listingID, requesterID uint) (*entity.Bid, int64, error) {
	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, 0, err
	}
	if listing.OwnerID != requesterID {
		return nil, 0, domain.ErrNotOwner
	}
	if !listing.IsActive {
		return nil, 0, domain.ErrAuctionClosed
	}

	if err := u.listings.Deactivate(ctx, listing.ID); err != nil {
		return nil, 0, fmt.Errorf("failed to close listing %d: %w", listing.ID, err)
	}

	winner, err := u.bids.HighestBid(ctx, listing.ID)
	if errors.Is(err, domain.ErrNoBids) {
		return nil, listing.StartingBid, nil
	}
	if err != nil {
		return nil, 0, err
	}
	return winner, winner.Amount, nil
}

// Winner returns the bid that won a closed auction: the bid holding the
// maximum amount, earliest placed on a tie. It returns nil while the
// listing is still active and nil when no bids were placed.
func (u *auctionUsecase) Winner(ctx context.Context, listingID uint) (*entity.Bid, error) {
	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.IsActive {
		return nil, nil
	}
	winner, err := u.bids.HighestBid(ctx, listing.ID)
	if errors.Is(err, domain.ErrNoBids) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return winner, nil
}

// SubmitComment records a comment by authorID on the listing. Comments are
// allowed on closed listings.
func (u *auctionUsecase) SubmitComment(ctx context.Context, listingID, authorID uint, content string) (*entity.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("empty comment")
	}
	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{ListingID: listing.ID, AuthorID: authorID, Content: content}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// Detail assembles the listing page bundle for viewerID. A viewerID of
// zero means an anonymous viewer: IsWatched and IsWinner are then false.
func (u *auctionUsecase) Detail(ctx context.Context, listingID, viewerID uint) (*ListingDetail, error) {
	listing, err := u.listings.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	price, err := u.CurrentPrice(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("failed to read current price: %w", err)
	}

	comments, err := u.comments.ByListing(ctx, listing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	detail := &ListingDetail{
		Listing:      *listing,
		CurrentPrice: price,
		Comments:     comments,
	}
	if viewerID == 0 {
		return detail, nil
	}

	watched, err := u.watchers.IsWatching(ctx, viewerID, listing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check watchlist: %w", err)
	}
	detail.IsWatched = watched

	if !listing.IsActive {
		winner, err := u.bids.HighestBid(ctx, listing.ID)
		if err != nil && !errors.Is(err, domain.ErrNoBids) {
			return nil, err
		}
		detail.IsWinner = winner != nil && winner.BidderID == viewerID
	}
	return detail, nil
}
