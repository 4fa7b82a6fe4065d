// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auctionadapters "auction_backend/internal/feature/auction/adapters"
	"auction_backend/internal/feature/auction/usecase"
	"auction_backend/internal/platform/cache"
)

// NewBidRepository creates a BidRepository implementation.
// If Redis is available, the repository is wrapped with the caching
// decorator so current-price reads skip the MAX(amount) query on a hit.
// Otherwise it returns the plain database-backed implementation.
func NewBidRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.BidRepository {
	bids := auctionadapters.NewBidMySQL(db)
	if rdb != nil {
		return cache.NewCachingBidRepository(rdb, ttl, bids, "price")
	}
	return bids
}
