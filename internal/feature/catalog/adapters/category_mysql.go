// Package adapters provides the repository implementations for the catalog
// feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	auctionentity "auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/catalog/domain"
	"auction_backend/internal/feature/catalog/domain/entity"
	"auction_backend/internal/feature/catalog/usecase"
)

// categoryMySQL is the gorm implementation of the CategoryRepository
// interface.
type categoryMySQL struct {
	db *gorm.DB
}

var _ usecase.CategoryRepository = (*categoryMySQL)(nil)

// NewCategoryMySQL creates a new instance of categoryMySQL with the given
// gorm.DB connection.
func NewCategoryMySQL(db *gorm.DB) *categoryMySQL {
	return &categoryMySQL{db: db}
}

// All retrieves every category ordered by name.
func (r *categoryMySQL) All(ctx context.Context) ([]entity.Category, error) {
	var rows []entity.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID retrieves a category by ID.
// It returns domain.ErrCategoryNotFound when no row matches.
func (r *categoryMySQL) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// Create adds a category to the database.
// It returns domain.ErrCategoryTaken when the name is already in use.
func (r *categoryMySQL) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		// MySQL error 1062: duplicate entry for a unique key.
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return domain.ErrCategoryTaken
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrCategoryTaken
		}
		return err
	}
	return nil
}

// Delete removes the category in one transaction: listings filed under it
// are detached first (category_id set to NULL), then the row is deleted.
func (r *categoryMySQL) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&auctionentity.Listing{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Category{}).Error
	})
}

// ActiveListings retrieves the active listings filed under the category,
// newest first.
func (r *categoryMySQL) ActiveListings(ctx context.Context, categoryID uint) ([]auctionentity.Listing, error) {
	var rows []auctionentity.Listing
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
