// Package comments provides database operations for book comments.
package comments

import (
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetCommentsOfBook retrieves the comments on a book, oldest first.
func (r *Repository) GetCommentsOfBook(bookID uint) ([]entities.Comment, error) {
	var comments []entities.Comment
	err := r.db.Where("book_id = ?", bookID).Order("created_at ASC").Find(&comments).Error
	return comments, err
}

// GetCommentByID retrieves a comment by ID.
func (r *Repository) GetCommentByID(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// CreateComment creates a comment on a book for the given creator.
func (r *Repository) CreateComment(content string, bookID, userID uint) (*entities.Comment, error) {
	comment := &entities.Comment{
		Content: content,
		BookID:  bookID,
		UserID:  userID,
	}
	if err := r.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces a comment's content.
func (r *Repository) UpdateComment(id uint, content string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	comment.Content = content
	if err := r.db.Save(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a comment. Returns gorm.ErrRecordNotFound when
// no row was deleted.
func (r *Repository) DeleteComment(id uint) error {
	result := r.db.Delete(&entities.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
