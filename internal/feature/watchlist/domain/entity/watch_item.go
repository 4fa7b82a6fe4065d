// Package entity defines the domain entities for the watchlist feature.
package entity

import "time"

// WatchItem is one row of the user/listing watch relation. The composite
// unique index makes membership set-like: at most one row per pair.
type WatchItem struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:watch_user_listing,priority:1"`
	ListingID uint `gorm:"not null;uniqueIndex:watch_user_listing,priority:2"`
	CreatedAt time.Time
}

// TableName overrides the default gorm table name.
func (WatchItem) TableName() string {
	return "watchlist_items"
}
