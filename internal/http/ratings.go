package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/auth"
	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// RatingStore defines database operations for rating management.
type RatingStore interface {
	GetRatingsOfBook(bookID uint) ([]entities.Rating, error)
	GetRatingByID(id uint) (*entities.Rating, error)
	GetAverageRatingOfBook(bookID uint) (*float64, error)
	CreateRating(value int, bookID, userID uint) (*entities.Rating, error)
	UpdateRating(id uint, value int) (*entities.Rating, error)
	DeleteRating(id uint) error
}

type RatingsController struct {
	store RatingStore
	books BookGetter
}

func NewRatingsController(store RatingStore, books BookGetter) *RatingsController {
	return &RatingsController{store: store, books: books}
}

// Value is a pointer so a legitimate 0 passes the required check.
type ratingRequest struct {
	Value *int `json:"value" binding:"required,min=0,max=5"`
}

// ListBookRatings returns the ratings of a book, oldest first.
// GET /books/:book_id/ratings
func (rc *RatingsController) ListBookRatings(c *gin.Context) {
	bookID, ok := rc.resolveBook(c)
	if !ok {
		return
	}

	ratings, err := rc.store.GetRatingsOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "list book ratings")
		return
	}
	if ratings == nil {
		ratings = []entities.Rating{}
	}
	c.JSON(http.StatusOK, ratings)
}

// GetAverageRating returns the mean rating of a book as a bare JSON
// number, or null when the book has no ratings.
// GET /books/:book_id/ratings/average
func (rc *RatingsController) GetAverageRating(c *gin.Context) {
	bookID, ok := rc.resolveBook(c)
	if !ok {
		return
	}

	avg, err := rc.store.GetAverageRatingOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "average rating")
		return
	}
	c.JSON(http.StatusOK, avg)
}

// CreateRating creates a rating on a book, owned by the authenticated
// user.
// POST /books/:book_id/ratings
func (rc *RatingsController) CreateRating(c *gin.Context) {
	bookID, ok := rc.resolveBook(c)
	if !ok {
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required and must be between 0 and 5")
		return
	}

	rating, err := rc.store.CreateRating(*req.Value, bookID, auth.CurrentUserID(c))
	if err != nil {
		respondInternalError(c, err, "create rating")
		return
	}
	respondCreated(c, rating)
}

// UpdateRating replaces a rating's value, with the same bounds as
// creation. Only the rating's owner may update it.
// PATCH /ratings/:rating_id
func (rc *RatingsController) UpdateRating(c *gin.Context) {
	id, ok := parseIDParam(c, "rating_id")
	if !ok {
		return
	}

	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "value is required and must be between 0 and 5")
		return
	}

	rating, ok := rc.resolveOwnedRating(c, id)
	if !ok {
		return
	}

	updated, err := rc.store.UpdateRating(rating.ID, *req.Value)
	if err != nil {
		respondInternalError(c, err, "update rating")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRating removes a rating. Only the rating's owner may delete it.
// DELETE /ratings/:rating_id
func (rc *RatingsController) DeleteRating(c *gin.Context) {
	id, ok := parseIDParam(c, "rating_id")
	if !ok {
		return
	}

	rating, ok := rc.resolveOwnedRating(c, id)
	if !ok {
		return
	}

	if err := rc.store.DeleteRating(rating.ID); err != nil {
		respondInternalError(c, err, "delete rating")
		return
	}
	c.Status(http.StatusNoContent)
}

func (rc *RatingsController) resolveBook(c *gin.Context) (uint, bool) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		return 0, false
	}
	if _, err := rc.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return 0, false
		}
		respondInternalError(c, err, "get book")
		return 0, false
	}
	return bookID, true
}

// resolveOwnedRating loads a rating and enforces ownership. Missing
// ratings report 404 before ownership is considered.
func (rc *RatingsController) resolveOwnedRating(c *gin.Context, id uint) (*entities.Rating, bool) {
	rating, err := rc.store.GetRatingByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "rating")
			return nil, false
		}
		respondInternalError(c, err, "get rating")
		return nil, false
	}
	if rating.UserID != auth.CurrentUserID(c) {
		respondForbidden(c)
		return nil, false
	}
	return rating, true
}
