package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/database/authors"
	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// defaultAuthorsPageSize is the take applied when the query omits it.
const defaultAuthorsPageSize = 10

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	ListAuthors(f authors.Filter) ([]entities.Author, int64, error)
	GetAuthorByID(id uint) (*entities.Author, error)
	CreateAuthor(firstname, lastname string) (*entities.Author, error)
	UpdateAuthor(id uint, firstname, lastname string) (*entities.Author, error)
	DeleteAuthor(id uint) error
}

// AuthorGetter provides read access to authors for controllers that
// only need existence checks.
type AuthorGetter interface {
	GetAuthorByID(id uint) (*entities.Author, error)
}

type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

type authorRequest struct {
	Firstname string `json:"firstname" binding:"required,min=1,max=50"`
	Lastname  string `json:"lastname" binding:"required,min=1,max=50"`
}

// ListAuthors returns a page of authors and the filter-only total in
// the X-Total-Count header.
// GET /authors?lastnameInput=&hasBooks=&include=books&skip=&take=
func (ac *AuthorsController) ListAuthors(c *gin.Context) {
	hasBooks := c.Query("hasBooks")
	if hasBooks != "" && hasBooks != "true" && hasBooks != "false" {
		respondBadRequest(c, "hasBooks must be true or false")
		return
	}

	include := c.Query("include")
	if include != "" && include != "books" {
		respondBadRequest(c, "unsupported include value")
		return
	}

	skip, take, ok := parsePagination(c, defaultAuthorsPageSize)
	if !ok {
		return
	}

	page, total, err := ac.store.ListAuthors(authors.Filter{
		Lastname:     c.Query("lastnameInput"),
		HasBooks:     hasBooks == "true",
		IncludeBooks: include == "books",
		Skip:         skip,
		Take:         take,
	})
	if err != nil {
		respondInternalError(c, err, "list authors")
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, page)
}

// CreateAuthor creates a new author.
// POST /authors
func (ac *AuthorsController) CreateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "firstname and lastname are required (1-50 characters)")
		return
	}

	author, err := ac.store.CreateAuthor(req.Firstname, req.Lastname)
	if err != nil {
		respondInternalError(c, err, "create author")
		return
	}
	respondCreated(c, author)
}

// GetAuthor returns a single author.
// GET /authors/:author_id
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "author_id")
	if !ok {
		return
	}

	author, err := ac.store.GetAuthorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "get author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// UpdateAuthor replaces an author's names.
// PATCH /authors/:author_id
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "author_id")
	if !ok {
		return
	}

	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "firstname and lastname are required (1-50 characters)")
		return
	}

	author, err := ac.store.UpdateAuthor(id, req.Firstname, req.Lastname)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "update author")
		return
	}
	c.JSON(http.StatusOK, author)
}

// DeleteAuthor removes an author.
// DELETE /authors/:author_id
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "author_id")
	if !ok {
		return
	}

	if err := ac.store.DeleteAuthor(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "author")
			return
		}
		respondInternalError(c, err, "delete author")
		return
	}
	c.Status(http.StatusNoContent)
}
