// Package entity defines the domain entities for the auction feature.
package entity

import "time"

// Listing is an item put up for auction. The owner is fixed at creation;
// bidding is permitted only while IsActive is true. Closed is terminal;
// there is no reopen transition.
type Listing struct {
	// ID is the unique identifier for the listing.
	ID uint `gorm:"primaryKey"`

	// Title is the short headline shown on index pages.
	Title string `gorm:"size:128;not null"`

	// Description is the free-text body of the listing.
	Description string `gorm:"type:text;not null"`

	// StartingBid is the opening price in cents. It is the bid floor only
	// until the first bid lands; after that the highest bid is.
	StartingBid int64 `gorm:"not null"`

	// ImageURL optionally points at a picture of the item. It is stored
	// and served as an opaque reference, never fetched.
	ImageURL *string `gorm:"size:512"`

	// CategoryID optionally files the listing under a category. Deleting
	// the category sets this to NULL.
	CategoryID *uint `gorm:"index"`

	// OwnerID is the user who created the listing. Immutable.
	OwnerID uint `gorm:"not null;index"`

	// IsActive reports whether the auction is open for bids.
	IsActive bool `gorm:"not null;default:true;index"`

	// CreatedAt is the timestamp when the listing was created.
	CreatedAt time.Time
}

// Bid is a single offer on a listing. Immutable once created and removed
// together with its listing.
type Bid struct {
	ID        uint  `gorm:"primaryKey"`
	ListingID uint  `gorm:"not null;index"`
	BidderID  uint  `gorm:"not null;index"`
	Amount    int64 `gorm:"not null"`
	CreatedAt time.Time
}

// Comment is a remark left on a listing page. Immutable once created and
// removed together with its listing.
type Comment struct {
	ID        uint   `gorm:"primaryKey"`
	ListingID uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}
