// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/auction/usecase"
)

// CachingBidRepository decorates a BidRepository with Redis caching of the
// per-listing highest amount, the value behind every current-price read.
// The winner is never cached; it is derived from the store at read time.
// Placing a bid invalidates the listing's price key so the cache can never
// serve a price older than the newest bid.
type CachingBidRepository struct {
	inner     usecase.BidRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the interface it
// wraps.
var _ usecase.BidRepository = (*CachingBidRepository)(nil)

// NewCachingBidRepository decorates a BidRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "price".
func NewCachingBidRepository(rdb *redis.Client, ttl time.Duration, inner usecase.BidRepository, namespace string) *CachingBidRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "price"
	}
	return &CachingBidRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Place inserts the bid and invalidates the listing's cached price.
func (c *CachingBidRepository) Place(ctx context.Context, bid *entity.Bid, startingBid int64) error {
	if err := c.inner.Place(ctx, bid, startingBid); err != nil {
		return err
	}
	if c.rdb != nil {
		// Best effort: a failed delete leaves only a ttl-bounded stale read.
		_ = c.rdb.Del(ctx, c.cacheKey(bid.ListingID)).Err()
	}
	return nil
}

// HighestAmount returns the cached highest amount when present, falling
// back to the inner repository and filling the cache on a miss. A listing
// with no bids is not cached; domain.ErrNoBids always reflects the store.
func (c *CachingBidRepository) HighestAmount(ctx context.Context, listingID uint) (int64, error) {
	if c.rdb == nil {
		return c.inner.HighestAmount(ctx, listingID)
	}

	key := c.cacheKey(listingID)
	if s, err := c.rdb.Get(ctx, key).Result(); err == nil {
		if v, perr := strconv.ParseInt(s, 10, 64); perr == nil {
			return v, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	v, err := c.inner.HighestAmount(ctx, listingID)
	if err != nil {
		return 0, err
	}

	_ = c.rdb.Set(ctx, key, strconv.FormatInt(v, 10), c.ttl).Err()
	return v, nil
}

// HighestBid always reads through to the store: it decides the winner of a
// closed auction and must never be stale.
func (c *CachingBidRepository) HighestBid(ctx context.Context, listingID uint) (*entity.Bid, error) {
	return c.inner.HighestBid(ctx, listingID)
}

// cacheKey generates the price cache key for a listing.
func (c *CachingBidRepository) cacheKey(listingID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, listingID)
}
