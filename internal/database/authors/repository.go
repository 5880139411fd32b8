// Package authors provides database operations for author management.
//
// # Usage
//
//	repo := authors.NewRepository(db)
//	page, total, err := repo.ListAuthors(authors.Filter{Lastname: "Tol", Take: 10})
package authors

import (
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// Filter restricts and paginates author listings.
type Filter struct {
	Lastname     string // substring match on lastname
	HasBooks     bool   // only authors with at least one book
	IncludeBooks bool   // eager-load books projected to id/titlename
	Skip         int
	Take         int
}

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListAuthors returns a page of authors ordered by lastname together
// with the total count of authors matching the filter. The page query
// and the count query share one predicate so the total always reflects
// the filter regardless of Skip/Take.
func (r *Repository) ListAuthors(f Filter) ([]entities.Author, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if f.Lastname != "" {
			db = db.Where("lastname LIKE ?", "%"+f.Lastname+"%")
		}
		if f.HasBooks {
			db = db.Where("EXISTS (SELECT 1 FROM books WHERE books.author_id = authors.id)")
		}
		return db
	}

	var total int64
	if err := filtered(r.db.Model(&entities.Author{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := filtered(r.db).
		Order("lastname ASC").
		Offset(f.Skip).
		Limit(f.Take)

	if f.IncludeBooks {
		query = query.Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "titlename", "author_id").Order("titlename ASC")
		})
	}

	var page []entities.Author
	if err := query.Find(&page).Error; err != nil {
		return nil, 0, err
	}
	return page, total, nil
}

// GetAuthorByID retrieves an author by ID.
func (r *Repository) GetAuthorByID(id uint) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// CreateAuthor creates a new author.
func (r *Repository) CreateAuthor(firstname, lastname string) (*entities.Author, error) {
	author := &entities.Author{
		Firstname: firstname,
		Lastname:  lastname,
	}
	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// UpdateAuthor replaces an author's names. Returns
// gorm.ErrRecordNotFound when the author does not exist.
func (r *Repository) UpdateAuthor(id uint, firstname, lastname string) (*entities.Author, error) {
	var author entities.Author
	if err := r.db.First(&author, id).Error; err != nil {
		return nil, err
	}
	author.Firstname = firstname
	author.Lastname = lastname
	if err := r.db.Save(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

// DeleteAuthor removes an author. Returns gorm.ErrRecordNotFound when
// no row was deleted.
func (r *Repository) DeleteAuthor(id uint) error {
	result := r.db.Delete(&entities.Author{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
