package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/database/books"
	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// defaultBooksPageSize is the take applied when the query omits it.
const defaultBooksPageSize = 5

// BookStore defines database operations for book management.
type BookStore interface {
	ListBooks(f books.Filter) ([]entities.Book, int64, error)
	GetBookByID(id uint) (*entities.Book, error)
	CreateBook(titlename string, publicationYear int, authorID uint) (*entities.Book, error)
	UpdateBook(id uint, u books.Update) (*entities.Book, error)
	DeleteBook(id uint) error
}

// BookGetter provides read access to books for controllers that only
// need existence checks.
type BookGetter interface {
	GetBookByID(id uint) (*entities.Book, error)
}

type BooksController struct {
	store   BookStore
	authors AuthorGetter
}

func NewBooksController(store BookStore, authors AuthorGetter) *BooksController {
	return &BooksController{store: store, authors: authors}
}

type createBookRequest struct {
	Titlename       string `json:"titlename" binding:"required,min=1,max=50"`
	PublicationYear int    `json:"publication_year" binding:"required"`
}

type updateBookRequest struct {
	Titlename       string `json:"titlename" binding:"required,min=1,max=50"`
	PublicationYear *int   `json:"publication_year"`
	AuthorID        *uint  `json:"author_id"`
}

// ListBooks returns a page of books and the filter-only total in the
// X-Total-Count header.
// GET /books?titlenameInput=&include=author&skip=&take=
func (bc *BooksController) ListBooks(c *gin.Context) {
	include := c.Query("include")
	if include != "" && include != "author" {
		respondBadRequest(c, "unsupported include value")
		return
	}

	skip, take, ok := parsePagination(c, defaultBooksPageSize)
	if !ok {
		return
	}

	page, total, err := bc.store.ListBooks(books.Filter{
		Titlename:     c.Query("titlenameInput"),
		IncludeAuthor: include == "author",
		Skip:          skip,
		Take:          take,
	})
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, page)
}

// ListAuthorBooks returns a page of one author's books.
// GET /authors/:author_id/books?titlenameInput=&skip=&take=
func (bc *BooksController) ListAuthorBooks(c *gin.Context) {
	authorID, ok := parseIDParam(c, "author_id")
	if !ok {
		return
	}

	if _, err := bc.authors.GetAuthorByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}

	skip, take, ok := parsePagination(c, defaultBooksPageSize)
	if !ok {
		return
	}

	page, total, err := bc.store.ListBooks(books.Filter{
		Titlename: c.Query("titlenameInput"),
		AuthorID:  authorID,
		Skip:      skip,
		Take:      take,
	})
	if err != nil {
		respondInternalError(c, err, "list author books")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, page)
}

// CreateBook creates a book under an author.
// POST /authors/:author_id/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	authorID, ok := parseIDParam(c, "author_id")
	if !ok {
		return
	}

	if _, err := bc.authors.GetAuthorByID(authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}

	var req createBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "titlename (1-50 characters) and publication_year are required")
		return
	}

	book, err := bc.store.CreateBook(req.Titlename, req.PublicationYear, authorID)
	if err != nil {
		respondInternalError(c, err, "create book")
		return
	}
	respondCreated(c, book)
}

// GetBook returns a single book.
// GET /books/:book_id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// UpdateBook updates a book's title, publication year or author.
// PATCH /books/:book_id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}

	var req updateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "titlename is required (1-50 characters)")
		return
	}

	if req.AuthorID != nil {
		if _, err := bc.authors.GetAuthorByID(*req.AuthorID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondNotFound(c, "author")
				return
			}
			respondInternalError(c, err, "get author")
			return
		}
	}

	book, err := bc.store.UpdateBook(id, books.Update{
		Titlename:       req.Titlename,
		PublicationYear: req.PublicationYear,
		AuthorID:        req.AuthorID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "update book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DeleteBook removes a book.
// DELETE /books/:book_id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}
	c.Status(http.StatusNoContent)
}
