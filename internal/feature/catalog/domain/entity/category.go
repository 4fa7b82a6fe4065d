// Package entity defines the domain entities for the catalog feature.
package entity

// Category is a human-readable label listings can be filed under. Names
// are unique. Deleting a category detaches its listings rather than
// removing them.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:64;uniqueIndex;not null"`
}
