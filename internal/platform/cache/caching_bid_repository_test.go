package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auction_backend/internal/feature/auction/domain"
	"auction_backend/internal/feature/auction/domain/entity"
)

// mockBidRepository is a func-field mock of the BidRepository interface.
type mockBidRepository struct {
	PlaceFunc         func(ctx context.Context, bid *entity.Bid, startingBid int64) error
	HighestAmountFunc func(ctx context.Context, listingID uint) (int64, error)
	HighestBidFunc    func(ctx context.Context, listingID uint) (*entity.Bid, error)
}

func (m *mockBidRepository) Place(ctx context.Context, bid *entity.Bid, startingBid int64) error {
	return m.PlaceFunc(ctx, bid, startingBid)
}

func (m *mockBidRepository) HighestAmount(ctx context.Context, listingID uint) (int64, error) {
	return m.HighestAmountFunc(ctx, listingID)
}

func (m *mockBidRepository) HighestBid(ctx context.Context, listingID uint) (*entity.Bid, error) {
	return m.HighestBidFunc(ctx, listingID)
}

func TestCachingBidRepository_HighestAmountCacheHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		HighestAmountFunc: func(ctx context.Context, listingID uint) (int64, error) {
			t.Fatal("inner repository must not be hit on a cache hit")
			return 0, nil
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	mock.ExpectGet("price:7").SetVal("1001")

	v, err := repo.HighestAmount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_HighestAmountMissFillsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		HighestAmountFunc: func(ctx context.Context, listingID uint) (int64, error) {
			return 1000, nil
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	mock.ExpectGet("price:7").RedisNil()
	mock.ExpectSet("price:7", "1000", time.Minute).SetVal("OK")

	v, err := repo.HighestAmount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_HighestAmountNoBidsNotCached(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		HighestAmountFunc: func(ctx context.Context, listingID uint) (int64, error) {
			return 0, domain.ErrNoBids
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	mock.ExpectGet("price:7").RedisNil()

	_, err := repo.HighestAmount(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNoBids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_HighestAmountCorruptedEntry(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		HighestAmountFunc: func(ctx context.Context, listingID uint) (int64, error) {
			return 1000, nil
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	mock.ExpectGet("price:7").SetVal("not-a-number")
	mock.ExpectDel("price:7").SetVal(1)
	mock.ExpectSet("price:7", "1000", time.Minute).SetVal("OK")

	v, err := repo.HighestAmount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_PlaceInvalidatesPriceKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		PlaceFunc: func(ctx context.Context, bid *entity.Bid, startingBid int64) error {
			return nil
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	mock.ExpectDel("price:7").SetVal(1)

	bid := &entity.Bid{ListingID: 7, BidderID: 5, Amount: 1001}
	require.NoError(t, repo.Place(context.Background(), bid, 1000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_PlaceRejectedKeepsCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	inner := &mockBidRepository{
		PlaceFunc: func(ctx context.Context, bid *entity.Bid, startingBid int64) error {
			return domain.ErrInvalidBid
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	// No Del expected: a rejected bid changes nothing.
	bid := &entity.Bid{ListingID: 7, BidderID: 5, Amount: 1000}
	err := repo.Place(context.Background(), bid, 1000)
	assert.ErrorIs(t, err, domain.ErrInvalidBid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_HighestBidBypassesCache(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	want := &entity.Bid{ID: 3, ListingID: 7, BidderID: 5, Amount: 1001}
	inner := &mockBidRepository{
		HighestBidFunc: func(ctx context.Context, listingID uint) (*entity.Bid, error) {
			return want, nil
		},
	}
	repo := NewCachingBidRepository(rdb, time.Minute, inner, "price")

	got, err := repo.HighestBid(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	// The winner read never touches Redis.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingBidRepository_NilRedisDelegates(t *testing.T) {
	inner := &mockBidRepository{
		HighestAmountFunc: func(ctx context.Context, listingID uint) (int64, error) {
			return 1000, nil
		},
		PlaceFunc: func(ctx context.Context, bid *entity.Bid, startingBid int64) error {
			return nil
		},
	}
	repo := NewCachingBidRepository(nil, 0, inner, "")

	v, err := repo.HighestAmount(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), v)

	bid := &entity.Bid{ListingID: 7, Amount: 1001}
	require.NoError(t, repo.Place(context.Background(), bid, 1000))
}
