// Package adapters provides the repository implementations for the
// watchlist feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	auctionentity "auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/watchlist/domain/entity"
	"auction_backend/internal/feature/watchlist/usecase"
)

// watchMySQL is the gorm implementation of the WatchRepository interface.
type watchMySQL struct {
	db *gorm.DB
}

var _ usecase.WatchRepository = (*watchMySQL)(nil)

// NewWatchMySQL creates a new instance of watchMySQL with the given
// gorm.DB connection.
func NewWatchMySQL(db *gorm.DB) *watchMySQL {
	return &watchMySQL{db: db}
}

// Add inserts the membership row. The ON CONFLICT DO NOTHING clause makes
// re-adding an existing pair a no-op instead of a unique-key error.
func (r *watchMySQL) Add(ctx context.Context, userID, listingID uint) error {
	item := entity.WatchItem{UserID: userID, ListingID: listingID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
}

// Remove deletes the membership row. Deleting an absent pair affects zero
// rows and is not an error.
func (r *watchMySQL) Remove(ctx context.Context, userID, listingID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Delete(&entity.WatchItem{}).Error
}

// IsWatching reports whether the pair is present.
func (r *watchMySQL) IsWatching(ctx context.Context, userID, listingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.WatchItem{}).
		Where("user_id = ? AND listing_id = ?", userID, listingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListingsFor retrieves the listings the user watches via a join on the
// relation table.
func (r *watchMySQL) ListingsFor(ctx context.Context, userID uint) ([]auctionentity.Listing, error) {
	var rows []auctionentity.Listing
	err := r.db.WithContext(ctx).
		Model(&auctionentity.Listing{}).
		Joins("JOIN watchlist_items ON watchlist_items.listing_id = listings.id").
		Where("watchlist_items.user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
