// Package adapters provides the repository implementations for the auction
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"auction_backend/internal/feature/auction/domain"
	"auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/auction/usecase"
)

// listingMySQL is the gorm implementation of the ListingRepository interface.
type listingMySQL struct {
	db *gorm.DB
}

// Compile-time check that listingMySQL implements ListingRepository.
var _ usecase.ListingRepository = (*listingMySQL)(nil)

// NewListingMySQL creates a new instance of listingMySQL with the given
// gorm.DB connection.
func NewListingMySQL(db *gorm.DB) *listingMySQL {
	return &listingMySQL{db: db}
}

// Create adds a listing to the database.
func (r *listingMySQL) Create(ctx context.Context, listing *entity.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

// FindByID retrieves a listing by ID.
// It returns domain.ErrListingNotFound when no row matches.
func (r *listingMySQL) FindByID(ctx context.Context, id uint) (*entity.Listing, error) {
	var l entity.Listing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&l).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// FindActive retrieves all active listings, newest first. The secondary
// order on id keeps same-second rows deterministic.
func (r *listingMySQL) FindActive(ctx context.Context) ([]entity.Listing, error) {
	var rows []entity.Listing
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Deactivate sets is_active to false for the listing. The active guard in
// the WHERE clause makes the transition a compare-and-swap: a second close
// racing the first matches zero rows and reports domain.ErrAuctionClosed
// instead of silently succeeding twice.
func (r *listingMySQL) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Listing{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrAuctionClosed
	}
	return nil
}
