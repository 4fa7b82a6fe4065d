package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"auction_backend/internal/app/di"
	"auction_backend/internal/app/router"
	auctionadapters "auction_backend/internal/feature/auction/adapters"
	auctionhandler "auction_backend/internal/feature/auction/transport/handler"
	auctionusecase "auction_backend/internal/feature/auction/usecase"
	authadapters "auction_backend/internal/feature/auth/adapters"
	authhandler "auction_backend/internal/feature/auth/transport/handler"
	authusecase "auction_backend/internal/feature/auth/usecase"
	catalogadapters "auction_backend/internal/feature/catalog/adapters"
	cataloghandler "auction_backend/internal/feature/catalog/transport/handler"
	catalogusecase "auction_backend/internal/feature/catalog/usecase"
	watchlistadapters "auction_backend/internal/feature/watchlist/adapters"
	watchlisthandler "auction_backend/internal/feature/watchlist/transport/handler"
	watchlistusecase "auction_backend/internal/feature/watchlist/usecase"
	infradb "auction_backend/internal/platform/db"
	jwtmw "auction_backend/internal/platform/jwt"
	infraredis "auction_backend/internal/platform/redis"
)

func main() {
	// db
	db := infradb.OpenDB()

	// Redis: optional, the price cache degrades to direct DB reads
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without price cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	expiration := 24 * time.Hour
	if v := os.Getenv("JWT_EXPIRATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			expiration = d
		}
	}
	jwtGen := jwtmw.NewGenerator(secret, expiration)

	// Repositories
	userRepo := authadapters.NewUserMySQL(db)
	listingRepo := auctionadapters.NewListingMySQL(db)
	bidRepo := di.NewBidRepository(rdb, db, 5*time.Minute)
	commentRepo := auctionadapters.NewCommentMySQL(db)
	watchRepo := watchlistadapters.NewWatchMySQL(db)
	categoryRepo := catalogadapters.NewCategoryMySQL(db)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	auctionUC := auctionusecase.NewAuctionUsecase(listingRepo, bidRepo, commentRepo, watchRepo)
	watchlistUC := watchlistusecase.NewWatchlistUsecase(watchRepo, listingRepo)
	catalogUC := catalogusecase.NewCatalogUsecase(categoryRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	auctionH := auctionhandler.NewAuctionHandler(auctionUC)
	watchlistH := watchlisthandler.NewWatchlistHandler(watchlistUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)

	r := router.NewRouter(authH, auctionH, watchlistH, catalogH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
