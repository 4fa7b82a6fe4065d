// Package handler provides the HTTP handlers for the watchlist feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"auction_backend/internal/api"
	auctiondomain "auction_backend/internal/feature/auction/domain"
	auctionentity "auction_backend/internal/feature/auction/domain/entity"
	jwtmw "auction_backend/internal/platform/jwt"
)

// WatchlistUsecase defines the watchlist operations consumed by this
// handler.
type WatchlistUsecase interface {
	Watch(ctx context.Context, userID, listingID uint) error
	Unwatch(ctx context.Context, userID, listingID uint) error
	Watched(ctx context.Context, userID uint) ([]auctionentity.Listing, error)
}

// WatchlistHandler handles HTTP requests for watchlist membership.
type WatchlistHandler struct {
	uc WatchlistUsecase
}

// NewWatchlistHandler creates a new instance of WatchlistHandler.
func NewWatchlistHandler(uc WatchlistUsecase) *WatchlistHandler {
	return &WatchlistHandler{uc: uc}
}

// Add handles PUT /watchlist/:id. Re-adding a watched listing is a no-op.
func (h *WatchlistHandler) Add(c *gin.Context) {
	h.toggle(c, true)
}

// Remove handles DELETE /watchlist/:id. Removing an unwatched listing is a
// no-op.
func (h *WatchlistHandler) Remove(c *gin.Context) {
	h.toggle(c, false)
}

func (h *WatchlistHandler) toggle(c *gin.Context, add bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return
	}
	userID := c.GetUint(jwtmw.ContextUserID)

	var opErr error
	if add {
		opErr = h.uc.Watch(c.Request.Context(), userID, uint(id))
	} else {
		opErr = h.uc.Unwatch(c.Request.Context(), userID, uint(id))
	}
	if opErr != nil {
		if errors.Is(opErr, auctiondomain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
			return
		}
		slog.Error("failed to toggle watchlist", "user_id", userID, "listing_id", id, "error", opErr)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.WatchResponse{Watching: add})
}

// List handles GET /watchlist and returns the caller's watched listings.
func (h *WatchlistHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	listings, err := h.uc.Watched(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list watchlist", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.ListingResponse, 0, len(listings))
	for _, l := range listings {
		resp := api.ListingResponse{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			StartingBid: auctiondomain.FormatAmount(l.StartingBid),
			CategoryID:  l.CategoryID,
			OwnerID:     l.OwnerID,
			IsActive:    l.IsActive,
			CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if l.ImageURL != nil {
			resp.ImageURL = *l.ImageURL
		}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}
