package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/database/tags"
	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// TagStore defines database operations for tag management.
type TagStore interface {
	GetAllTags() ([]entities.Tag, error)
	GetTagByID(id uint) (*entities.Tag, error)
	CreateTag(name string) (*entities.Tag, error)
	RenameTag(id uint, name string) (*entities.Tag, error)
	DeleteTag(id uint) error
	GetTagsOfBook(bookID uint) ([]entities.Tag, error)
	AttachTagToBook(bookID, tagID uint) (*entities.Book, error)
	DetachTagFromBook(bookID, tagID uint) (*entities.Book, error)
}

type TagsController struct {
	store TagStore
}

func NewTagsController(store TagStore) *TagsController {
	return &TagsController{store: store}
}

type tagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// ListTags returns every tag ordered by name.
// GET /tags
func (tc *TagsController) ListTags(c *gin.Context) {
	all, err := tc.store.GetAllTags()
	if err != nil {
		respondInternalError(c, err, "list tags")
		return
	}
	c.JSON(http.StatusOK, all)
}

// CreateTag creates a tag with a unique name.
// POST /tags
func (tc *TagsController) CreateTag(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required (1-50 characters)")
		return
	}

	tag, err := tc.store.CreateTag(req.Name)
	if err != nil {
		if errors.Is(err, tags.ErrTagExists) {
			respondConflict(c, "tag name already taken")
			return
		}
		respondInternalError(c, err, "create tag")
		return
	}
	respondCreated(c, tag)
}

// GetTag returns a single tag.
// GET /tags/:tag_id
func (tc *TagsController) GetTag(c *gin.Context) {
	id, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	tag, err := tc.store.GetTagByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "tag")
			return
		}
		respondInternalError(c, err, "get tag")
		return
	}
	c.JSON(http.StatusOK, tag)
}

// UpdateTag renames a tag. Renaming to a name held by another tag is a
// conflict.
// PATCH /tags/:tag_id
func (tc *TagsController) UpdateTag(c *gin.Context) {
	id, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "name is required (1-50 characters)")
		return
	}

	tag, err := tc.store.RenameTag(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			respondNotFound(c, "tag")
		case errors.Is(err, tags.ErrTagExists):
			respondConflict(c, "tag name already taken")
		default:
			respondInternalError(c, err, "update tag")
		}
		return
	}
	c.JSON(http.StatusOK, tag)
}

// DeleteTag removes a tag and its book associations.
// DELETE /tags/:tag_id
func (tc *TagsController) DeleteTag(c *gin.Context) {
	id, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	if err := tc.store.DeleteTag(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "tag")
			return
		}
		respondInternalError(c, err, "delete tag")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookTags returns the tags attached to a book.
// GET /books/:book_id/tags
func (tc *TagsController) ListBookTags(c *gin.Context) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}

	bookTags, err := tc.store.GetTagsOfBook(bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "list book tags")
		return
	}
	c.JSON(http.StatusOK, bookTags)
}

// AttachTag attaches a tag to a book. Attaching an already-attached tag
// leaves the book unchanged.
// POST /books/:book_id/tags/:tag_id
func (tc *TagsController) AttachTag(c *gin.Context) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	book, err := tc.store.AttachTagToBook(bookID, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book or tag")
			return
		}
		respondInternalError(c, err, "attach tag")
		return
	}
	c.JSON(http.StatusOK, book)
}

// DetachTag detaches a tag from a book. Detaching an unattached tag
// leaves the book unchanged.
// DELETE /books/:book_id/tags/:tag_id
func (tc *TagsController) DetachTag(c *gin.Context) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		return
	}
	tagID, ok := parseIDParam(c, "tag_id")
	if !ok {
		return
	}

	book, err := tc.store.DetachTagFromBook(bookID, tagID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book or tag")
			return
		}
		respondInternalError(c, err, "detach tag")
		return
	}
	c.JSON(http.StatusOK, book)
}
