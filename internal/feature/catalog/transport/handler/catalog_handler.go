// Package handler provides the HTTP handlers for the catalog feature.
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
	"auction_backend/internal/feature/catalog/domain"
	"auction_backend/internal/feature/catalog/domain/entity"
)

// CatalogUsecase defines the catalog operations consumed by this handler.
type CatalogUsecase interface {
	Categories(ctx context.Context) ([]entity.Category, error)
	ActiveListings(ctx context.Context, categoryID uint) ([]auctionentity.Listing, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CatalogHandler handles HTTP requests for categories.
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler creates a new instance of CatalogHandler.
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List handles GET /categories and returns all categories ordered by name.
func (h *CatalogHandler) List(c *gin.Context) {
	categories, err := h.uc.Categories(c.Request.Context())
	if err != nil {
		slog.Error("failed to list categories", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	out := make([]api.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, api.CategoryResponse{ID: cat.ID, Name: cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

// Listings handles GET /categories/:id/listings and returns the active
// listings filed under the category, newest first.
func (h *CatalogHandler) Listings(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	listings, err := h.uc.ActiveListings(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "category not found"})
			return
		}
		slog.Error("failed to list category listings", "category_id", id, "error", err)
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

// Create handles POST /categories.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req api.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	category, err := h.uc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryTaken) {
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
			return
		}
		slog.Error("failed to create category", "name", req.Name, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusCreated, api.CategoryResponse{ID: category.ID, Name: category.Name})
}

// Delete handles DELETE /categories/:id. Listings filed under the category
// survive with their category detached.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "category not found"})
			return
		}
		slog.Error("failed to delete category", "category_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// categoryID parses the :id path parameter, answering 400 itself on
// failure.
func categoryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid category id"})
		return 0, false
	}
	return uint(id), true
}
