// Package router assembles the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	auctionhandler "auction_backend/internal/feature/auction/transport/handler"
	authhandler "auction_backend/internal/feature/auth/transport/handler"
	cataloghandler "auction_backend/internal/feature/catalog/transport/handler"
	watchlisthandler "auction_backend/internal/feature/watchlist/transport/handler"
	httphandler "auction_backend/internal/platform/http/handler"
	jwtmw "auction_backend/internal/platform/jwt"
)

// NewRouter wires every feature handler into one gin engine.
//
// Browsing is public: the index, listing details, and the category browser
// need no token. The listing detail runs behind the optional-auth
// middleware so IsWatched and IsWinner light up for signed-in viewers.
// Everything that mutates state requires a bearer token.
func NewRouter(auth *authhandler.AuthHandler, auction *auctionhandler.AuctionHandler,
	watchlist *watchlisthandler.WatchlistHandler, catalog *cataloghandler.CatalogHandler) *gin.Engine {
	r := gin.Default()

	// Liveness probe
	r.GET("/healthz", httphandler.Health)

	// Registration and login (JWT issuance)
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)

	// Public browsing
	r.GET("/listings", auction.List)
	r.GET("/listings/:id", jwtmw.AuthOptional(), auction.Detail)
	r.GET("/categories", catalog.List)
	r.GET("/categories/:id/listings", catalog.Listings)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(jwtmw.AuthRequired())
	{
		authed.POST("/listings", auction.Create)
		authed.POST("/listings/:id/bids", auction.PlaceBid)
		authed.POST("/listings/:id/comments", auction.Comment)
		authed.POST("/listings/:id/close", auction.Close)

		authed.GET("/watchlist", watchlist.List)
		authed.PUT("/watchlist/:id", watchlist.Add)
		authed.DELETE("/watchlist/:id", watchlist.Remove)

		authed.POST("/categories", catalog.Create)
		authed.DELETE("/categories/:id", catalog.Delete)
	}

	return r
}
