package adapters

import (
	"context"

	"gorm.io/gorm"

	"auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/auction/usecase"
)

// commentMySQL is the gorm implementation of the CommentRepository interface.
type commentMySQL struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentMySQL)(nil)

// NewCommentMySQL creates a new instance of commentMySQL with the given
// gorm.DB connection.
func NewCommentMySQL(db *gorm.DB) *commentMySQL {
	return &commentMySQL{db: db}
}

// Create adds a comment to the database.
func (r *commentMySQL) Create(ctx context.Context, comment *entity.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// ByListing retrieves the listing's comments in placement order.
func (r *commentMySQL) ByListing(ctx context.Context, listingID uint) ([]entity.Comment, error) {
	var rows []entity.Comment
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
