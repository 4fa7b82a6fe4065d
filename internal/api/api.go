// Package api defines the request and response structures exchanged with
// HTTP clients. Gin binding tags perform shape validation; business rules
// live in the usecases.
package api

// SignupRequest is the request body for POST /signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a signed JWT back to the client.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic success envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a generic failure envelope. CurrentPrice is populated on
// rejected bids so the client can re-render the listing without a second
// round trip.
type ErrorResponse struct {
	Error        string `json:"error"`
	CurrentPrice string `json:"current_price,omitempty"`
}

// CreateListingRequest is the request body for POST /listings.
// StartingBid is a decimal string such as "10.00"; amounts carry at most
// two fractional digits.
type CreateListingRequest struct {
	Title       string `json:"title" binding:"required,max=128"`
	Description string `json:"description" binding:"required"`
	StartingBid string `json:"starting_bid" binding:"required"`
	ImageURL    string `json:"image_url" binding:"omitempty,url"`
	CategoryID  *uint  `json:"category_id"`
}

// ListingResponse is the wire form of a single listing.
type ListingResponse struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartingBid string `json:"starting_bid"`
	ImageURL    string `json:"image_url,omitempty"`
	CategoryID  *uint  `json:"category_id,omitempty"`
	OwnerID     uint   `json:"owner_id"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

// ListingDetailResponse bundles everything the listing page needs.
type ListingDetailResponse struct {
	Listing      ListingResponse   `json:"listing"`
	CurrentPrice string            `json:"current_price"`
	Comments     []CommentResponse `json:"comments"`
	IsWatched    bool              `json:"is_watched"`
	IsWinner     bool              `json:"is_winner"`
}

// BidRequest is the request body for POST /listings/:id/bids.
type BidRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// BidResponse reports the price after a successful bid.
type BidResponse struct {
	CurrentPrice string `json:"current_price"`
}

// CommentRequest is the request body for POST /listings/:id/comments.
type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is the wire form of a comment.
type CommentResponse struct {
	ID        uint   `json:"id"`
	AuthorID  uint   `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// CloseResponse reports the outcome of closing an auction. WinnerID is nil
// when the listing received no bids.
type CloseResponse struct {
	WinnerID   *uint  `json:"winner_id"`
	FinalPrice string `json:"final_price"`
	IsActive   bool   `json:"is_active"`
}

// WatchResponse reports watchlist membership after a toggle.
type WatchResponse struct {
	Watching bool `json:"watching"`
}

// CategoryRequest is the request body for POST /categories.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=64"`
}

// CategoryResponse is the wire form of a category.
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
