// Package tags provides database operations for tag management and the
// book/tag association.
//
// Attach and detach go through GORM's association API, which treats the
// book_tags join table as a set: attaching an already-attached tag or
// detaching an absent one leaves the state unchanged.
package tags

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// ErrTagExists is returned when a tag name is already taken.
var ErrTagExists = errors.New("tag already exists")

// Repository handles all tag database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new tags repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllTags retrieves every tag ordered by name.
func (r *Repository) GetAllTags() ([]entities.Tag, error) {
	var tags []entities.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// GetTagByID retrieves a tag by ID.
func (r *Repository) GetTagByID(id uint) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// CreateTag creates a new tag. Returns ErrTagExists when the name is
// already taken.
func (r *Repository) CreateTag(name string) (*entities.Tag, error) {
	var existing entities.Tag
	err := r.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrTagExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &entities.Tag{Name: name}
	if err := r.db.Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

// RenameTag changes a tag's name. Returns gorm.ErrRecordNotFound when
// the tag does not exist and ErrTagExists when the new name is taken by
// another tag.
func (r *Repository) RenameTag(id uint, name string) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}

	var existing entities.Tag
	err := r.db.Where("name = ? AND id <> ?", name, id).First(&existing).Error
	if err == nil {
		return nil, ErrTagExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag.Name = name
	if err := r.db.Save(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

// DeleteTag removes a tag. Returns gorm.ErrRecordNotFound when no row
// was deleted.
func (r *Repository) DeleteTag(id uint) error {
	result := r.db.Delete(&entities.Tag{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetTagsOfBook retrieves the tags attached to a book, ordered by name.
// Returns gorm.ErrRecordNotFound when the book does not exist.
func (r *Repository) GetTagsOfBook(bookID uint) ([]entities.Tag, error) {
	var book entities.Book
	if err := r.db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}).First(&book, bookID).Error; err != nil {
		return nil, err
	}
	if book.Tags == nil {
		return []entities.Tag{}, nil
	}
	return book.Tags, nil
}

// AttachTagToBook associates a tag with a book. Attaching a tag that is
// already attached is a no-op.
func (r *Repository) AttachTagToBook(bookID, tagID uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, bookID).Error; err != nil {
		return nil, err
	}
	var tag entities.Tag
	if err := r.db.First(&tag, tagID).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&book).Association("Tags").Append(&tag); err != nil {
		return nil, err
	}
	return r.getBookWithTags(bookID)
}

// DetachTagFromBook removes a tag from a book. Detaching a tag that is
// not attached is a no-op.
func (r *Repository) DetachTagFromBook(bookID, tagID uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, bookID).Error; err != nil {
		return nil, err
	}
	var tag entities.Tag
	if err := r.db.First(&tag, tagID).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&book).Association("Tags").Delete(&tag); err != nil {
		return nil, err
	}
	return r.getBookWithTags(bookID)
}

func (r *Repository) getBookWithTags(bookID uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Tags", func(db *gorm.DB) *gorm.DB {
		return db.Order("name ASC")
	}).First(&book, bookID).Error
	if err != nil {
		return nil, err
	}
	if book.Tags == nil {
		book.Tags = []entities.Tag{}
	}
	return &book, nil
}
