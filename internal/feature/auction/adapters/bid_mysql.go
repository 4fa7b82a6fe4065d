package adapters

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"auction_backend/internal/feature/auction/domain"
	"auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/auction/usecase"
)

// bidMySQL is the gorm implementation of the BidRepository interface.
type bidMySQL struct {
	db *gorm.DB
}

var _ usecase.BidRepository = (*bidMySQL)(nil)

// NewBidMySQL creates a new instance of bidMySQL with the given gorm.DB
// connection.
func NewBidMySQL(db *gorm.DB) *bidMySQL {
	return &bidMySQL{db: db}
}

// Place inserts the bid inside a transaction that re-reads the highest
// amount first. The usecase already checked the floor, but that check and
// this insert are separate statements; re-checking here closes the window
// in which a competing bid lands between them. Returns domain.ErrInvalidBid
// when the amount no longer exceeds the floor.
func (r *bidMySQL) Place(ctx context.Context, bid *entity.Bid, startingBid int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var max sql.NullInt64
		err := tx.Model(&entity.Bid{}).
			Where("listing_id = ?", bid.ListingID).
			Select("MAX(amount)").
			Scan(&max).Error
		if err != nil {
			return err
		}

		floor := startingBid
		if max.Valid && max.Int64 > floor {
			floor = max.Int64
		}
		if bid.Amount <= floor {
			return domain.ErrInvalidBid
		}
		return tx.Create(bid).Error
	})
}

// HighestAmount returns MAX(amount) across the listing's bids, or
// domain.ErrNoBids when the listing has none.
func (r *bidMySQL) HighestAmount(ctx context.Context, listingID uint) (int64, error) {
	var max sql.NullInt64
	err := r.db.WithContext(ctx).Model(&entity.Bid{}).
		Where("listing_id = ?", listingID).
		Select("MAX(amount)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, domain.ErrNoBids
	}
	return max.Int64, nil
}

// HighestBid returns the bid holding the maximum amount. Ties cannot occur
// under the strict floor, but defensively the earliest such bid wins.
func (r *bidMySQL) HighestBid(ctx context.Context, listingID uint) (*entity.Bid, error) {
	var b entity.Bid
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("amount DESC, id ASC").
		First(&b).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoBids
		}
		return nil, err
	}
	return &b, nil
}
