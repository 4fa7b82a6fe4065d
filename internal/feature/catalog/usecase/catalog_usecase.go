// Package usecase implements the category browser and its management
// operations.
package usecase

import (
	"context"
	"errors"
	"strings"

	auctionentity "auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/catalog/domain/entity"
)

// CategoryRepository abstracts the persistence layer for categories.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type CategoryRepository interface {
	// All retrieves every category ordered by name.
	All(ctx context.Context) ([]entity.Category, error)

	// FindByID retrieves a category by ID. It returns
	// domain.ErrCategoryNotFound when no such category exists.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// Create persists a new category. It returns domain.ErrCategoryTaken
	// when the name is already in use.
	Create(ctx context.Context, category *entity.Category) error

	// Delete removes the category after detaching its listings.
	Delete(ctx context.Context, id uint) error

	// ActiveListings retrieves the active listings filed under the
	// category, newest first.
	ActiveListings(ctx context.Context, categoryID uint) ([]auctionentity.Listing, error)
}

// catalogUsecase implements the category browser.
type catalogUsecase struct {
	categories CategoryRepository
}

// NewCatalogUsecase creates a new instance of catalogUsecase.
func NewCatalogUsecase(categories CategoryRepository) *catalogUsecase {
	return &catalogUsecase{categories: categories}
}

// Categories returns all categories ordered by name.
func (u *catalogUsecase) Categories(ctx context.Context) ([]entity.Category, error) {
	return u.categories.All(ctx)
}

// ActiveListings returns the active listings filed under the category,
// newest first.
func (u *catalogUsecase) ActiveListings(ctx context.Context, categoryID uint) ([]auctionentity.Listing, error) {
	if _, err := u.categories.FindByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return u.categories.ActiveListings(ctx, categoryID)
}

// Create adds a new category with the given name.
func (u *catalogUsecase) Create(ctx context.Context, name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("empty category name")
	}
	category := &entity.Category{Name: name}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Listings filed under it are detached, not
// deleted.
func (u *catalogUsecase) Delete(ctx context.Context, id uint) error {
	if _, err := u.categories.FindByID(ctx, id); err != nil {
		return err
	}
	return u.categories.Delete(ctx, id)
}
