// Package ratings provides database operations for book ratings.
package ratings

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// Repository handles all rating database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ratings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetRatingsOfBook retrieves the ratings of a book, oldest first.
func (r *Repository) GetRatingsOfBook(bookID uint) ([]entities.Rating, error) {
	var ratings []entities.Rating
	err := r.db.Where("book_id = ?", bookID).Order("created_at ASC").Find(&ratings).Error
	return ratings, err
}

// GetRatingByID retrieves a rating by ID.
func (r *Repository) GetRatingByID(id uint) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// GetAverageRatingOfBook computes the mean rating value of a book. The
// result is nil when the book has no ratings.
func (r *Repository) GetAverageRatingOfBook(bookID uint) (*float64, error) {
	var avg sql.NullFloat64
	row := r.db.Model(&entities.Rating{}).
		Where("book_id = ?", bookID).
		Select("AVG(value)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// CreateRating creates a rating on a book for the given creator.
func (r *Repository) CreateRating(value int, bookID, userID uint) (*entities.Rating, error) {
	rating := &entities.Rating{
		Value:  value,
		BookID: bookID,
		UserID: userID,
	}
	if err := r.db.Create(rating).Error; err != nil {
		return nil, err
	}
	return rating, nil
}

// UpdateRating replaces a rating's value.
func (r *Repository) UpdateRating(id uint, value int) (*entities.Rating, error) {
	var rating entities.Rating
	if err := r.db.First(&rating, id).Error; err != nil {
		return nil, err
	}
	rating.Value = value
	if err := r.db.Save(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// DeleteRating removes a rating. Returns gorm.ErrRecordNotFound when no
// row was deleted.
func (r *Repository) DeleteRating(id uint) error {
	result := r.db.Delete(&entities.Rating{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
