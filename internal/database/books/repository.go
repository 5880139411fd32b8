// Package books provides database operations for book management.
package books

import (
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// Filter restricts and paginates book listings.
type Filter struct {
	Titlename     string // substring match on titlename
	AuthorID      uint   // 0 means any author
	IncludeAuthor bool   // eager-load the author projected to id/names
	Skip          int
	Take          int
}

// Update carries the mutable book fields. Nil pointers leave the stored
// value untouched.
type Update struct {
	Titlename       string
	PublicationYear *int
	AuthorID        *uint
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListBooks returns a page of books ordered by titlename together with
// the total count of books matching the filter. Page and count queries
// share one predicate.
func (r *Repository) ListBooks(f Filter) ([]entities.Book, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if f.Titlename != "" {
			db = db.Where("titlename LIKE ?", "%"+f.Titlename+"%")
		}
		if f.AuthorID > 0 {
			db = db.Where("author_id = ?", f.AuthorID)
		}
		return db
	}

	var total int64
	if err := filtered(r.db.Model(&entities.Book{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := filtered(r.db).
		Order("titlename ASC").
		Offset(f.Skip).
		Limit(f.Take)

	if f.IncludeAuthor {
		query = query.Preload("Author", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "firstname", "lastname")
		})
	}

	var page []entities.Book
	if err := query.Find(&page).Error; err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

// GetBookByID retrieves a book by ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// CreateBook creates a book under an author. The caller is expected to
// have checked that the author exists.
func (r *Repository) CreateBook(titlename string, publicationYear int, authorID uint) (*entities.Book, error) {
	book := &entities.Book{
		Titlename:       titlename,
		PublicationYear: publicationYear,
		AuthorID:        authorID,
	}
	if err := r.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

// UpdateBook applies the given update. Returns gorm.ErrRecordNotFound
// when the book does not exist.
func (r *Repository) UpdateBook(id uint, u Update) (*entities.Book, error) {
	var book entities.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return nil, err
	}
	book.Titlename = u.Titlename
	if u.PublicationYear != nil {
		book.PublicationYear = *u.PublicationYear
	}
	if u.AuthorID != nil {
		book.AuthorID = *u.AuthorID
	}
	if err := r.db.Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// DeleteBook removes a book. Returns gorm.ErrRecordNotFound when no row
// was deleted.
func (r *Repository) DeleteBook(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
