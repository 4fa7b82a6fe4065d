// Package domain defines domain-level errors for the catalog feature.
package domain

import "errors"

var (
	// ErrCategoryNotFound indicates that no category exists with the
	// given ID.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryTaken indicates that a category with the given name
	// already exists.
	ErrCategoryTaken = errors.New("category name already taken")
)
