// Package handler provides the HTTP handlers for the auction feature.
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
	"auction_backend/internal/feature/auction/domain"
	"auction_backend/internal/feature/auction/domain/entity"
	"auction_backend/internal/feature/auction/usecase"
	jwtmw "auction_backend/internal/platform/jwt"
)

// AuctionUsecase defines the auction operations consumed by this handler.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuctionUsecase interface {
	ActiveListings(ctx context.Context) ([]entity.Listing, error)
	CreateListing(ctx context.Context, ownerID uint, title, description string,
		startingBid int64, imageURL *string, categoryID *uint) (*entity.Listing, error)
	Detail(ctx context.Context, listingID, viewerID uint) (*usecase.ListingDetail, error)
	PlaceBid(ctx context.Context, listingID, bidderID uint, amount int64) (int64, error)
	SubmitComment(ctx context.Context, listingID, authorID uint, content string) (*entity.Comment, error)
	Close(ctx context.Context, listingID, requesterID uint) (*entity.Bid, int64, error)
}

// AuctionHandler handles HTTP requests for listings, bids, comments and
// auction closing.
type AuctionHandler struct {
	uc AuctionUsecase
}

// NewAuctionHandler creates a new instance of AuctionHandler.
func NewAuctionHandler(uc AuctionUsecase) *AuctionHandler {
	return &AuctionHandler{uc: uc}
}

// List handles GET /listings and returns all active listings, newest first.
func (h *AuctionHandler) List(c *gin.Context) {
	listings, err := h.uc.ActiveListings(c.Request.Context())
	if err != nil {
		slog.Error("failed to list active listings", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	c.JSON(http.StatusOK, out)
}

// Detail handles GET /listings/:id. IsWatched and IsWinner are computed
// for the authenticated viewer and false for anonymous requests.
func (h *AuctionHandler) Detail(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	detail, err := h.uc.Detail(c.Request.Context(), id, c.GetUint(jwtmw.ContextUserID))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
			return
		}
		slog.Error("failed to load listing detail", "listing_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	comments := make([]api.CommentResponse, 0, len(detail.Comments))
	for _, cm := range detail.Comments {
		comments = append(comments, toCommentResponse(cm))
	}
	c.JSON(http.StatusOK, api.ListingDetailResponse{
		Listing:      toListingResponse(detail.Listing),
		CurrentPrice: domain.FormatAmount(detail.CurrentPrice),
		Comments:     comments,
		IsWatched:    detail.IsWatched,
		IsWinner:     detail.IsWinner,
	})
}

// Create handles POST /listings. The owner is the authenticated caller.
func (h *AuctionHandler) Create(c *gin.Context) {
	var req api.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	startingBid, err := domain.ParseAmount(req.StartingBid)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	var imageURL *string
	if req.ImageURL != "" {
		imageURL = &req.ImageURL
	}

	ownerID := c.GetUint(jwtmw.ContextUserID)
	listing, err := h.uc.CreateListing(c.Request.Context(), ownerID,
		req.Title, req.Description, startingBid, imageURL, req.CategoryID)
	if err != nil {
		slog.Error("failed to create listing", "owner_id", ownerID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	slog.Info("listing created", "listing_id", listing.ID, "owner_id", ownerID)
	c.JSON(http.StatusCreated, toListingResponse(*listing))
}

// PlaceBid handles POST /listings/:id/bids. Rejected bids report a message
// plus the unchanged current price; the auction stays open either way.
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	var req api.BidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	bidderID := c.GetUint(jwtmw.ContextUserID)
	price, err := h.uc.PlaceBid(c.Request.Context(), id, bidderID, amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
		case errors.Is(err, domain.ErrAuctionClosed):
			c.JSON(http.StatusConflict, api.ErrorResponse{
				Error:        err.Error(),
				CurrentPrice: domain.FormatAmount(price),
			})
		case errors.Is(err, domain.ErrInvalidBid), errors.Is(err, domain.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Error:        err.Error(),
				CurrentPrice: domain.FormatAmount(price),
			})
		default:
			slog.Error("failed to place bid", "listing_id", id, "bidder_id", bidderID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}
	slog.Info("bid placed", "listing_id", id, "bidder_id", bidderID, "amount", amount)
	c.JSON(http.StatusOK, api.BidResponse{CurrentPrice: domain.FormatAmount(price)})
}

// Comment handles POST /listings/:id/comments.
func (h *AuctionHandler) Comment(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}
	var req api.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	authorID := c.GetUint(jwtmw.ContextUserID)
	comment, err := h.uc.SubmitComment(c.Request.Context(), id, authorID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
			return
		}
		slog.Error("failed to create comment", "listing_id", id, "author_id", authorID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusCreated, toCommentResponse(*comment))
}

// Close handles POST /listings/:id/close. Only the owner may close, and
// closing twice reports a conflict with no state change.
func (h *AuctionHandler) Close(c *gin.Context) {
	id, ok := listingID(c)
	if !ok {
		return
	}

	requesterID := c.GetUint(jwtmw.ContextUserID)
	winner, finalPrice, err := h.uc.Close(c.Request.Context(), id, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "listing not found"})
		case errors.Is(err, domain.ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrAuctionClosed):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "auction already closed"})
		default:
			slog.Error("failed to close auction", "listing_id", id, "requester_id", requesterID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	resp := api.CloseResponse{FinalPrice: domain.FormatAmount(finalPrice), IsActive: false}
	if winner != nil {
		resp.WinnerID = &winner.BidderID
	}
	slog.Info("auction closed", "listing_id", id, "owner_id", requesterID)
	c.JSON(http.StatusOK, resp)
}

// listingID parses the :id path parameter, answering 400 itself on failure.
func listingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid listing id"})
		return 0, false
	}
	return uint(id), true
}

func toListingResponse(l entity.Listing) api.ListingResponse {
	out := api.ListingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		StartingBid: domain.FormatAmount(l.StartingBid),
		CategoryID:  l.CategoryID,
		OwnerID:     l.OwnerID,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.ImageURL != nil {
		out.ImageURL = *l.ImageURL
	}
	return out
}

func toCommentResponse(cm entity.Comment) api.CommentResponse {
	return api.CommentResponse{
		ID:        cm.ID,
		AuthorID:  cm.AuthorID,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt.UTC().Format(time.RFC3339),
	}
}
