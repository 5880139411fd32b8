package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mlefebvre/bookcatalog/internal/auth"
	"github.com/mlefebvre/bookcatalog/internal/entities"
)

// CommentStore defines database operations for comment management.
type CommentStore interface {
	GetCommentsOfBook(bookID uint) ([]entities.Comment, error)
	GetCommentByID(id uint) (*entities.Comment, error)
	CreateComment(content string, bookID, userID uint) (*entities.Comment, error)
	UpdateComment(id uint, content string) (*entities.Comment, error)
	DeleteComment(id uint) error
}

type CommentsController struct {
	store CommentStore
	books BookGetter
}

func NewCommentsController(store CommentStore, books BookGetter) *CommentsController {
	return &CommentsController{store: store, books: books}
}

type commentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// ListBookComments returns the comments on a book, oldest first.
// GET /books/:book_id/comments
func (cc *CommentsController) ListBookComments(c *gin.Context) {
	bookID, ok := cc.resolveBook(c)
	if !ok {
		return
	}

	comments, err := cc.store.GetCommentsOfBook(bookID)
	if err != nil {
		respondInternalError(c, err, "list book comments")
		return
	}
	if comments == nil {
		comments = []entities.Comment{}
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment creates a comment on a book, owned by the authenticated
// user.
// POST /books/:book_id/comments
func (cc *CommentsController) CreateComment(c *gin.Context) {
	bookID, ok := cc.resolveBook(c)
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "content is required (1-2000 characters)")
		return
	}

	comment, err := cc.store.CreateComment(req.Content, bookID, auth.CurrentUserID(c))
	if err != nil {
		respondInternalError(c, err, "create comment")
		return
	}
	respondCreated(c, comment)
}

// UpdateComment replaces a comment's content. Only the comment's owner
// may update it.
// PATCH /comments/:comment_id
func (cc *CommentsController) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "content is required (1-2000 characters)")
		return
	}

	comment, ok := cc.resolveOwnedComment(c, id)
	if !ok {
		return
	}

	updated, err := cc.store.UpdateComment(comment.ID, req.Content)
	if err != nil {
		respondInternalError(c, err, "update comment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteComment removes a comment. Only the comment's owner may delete
// it.
// DELETE /comments/:comment_id
func (cc *CommentsController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}

	comment, ok := cc.resolveOwnedComment(c, id)
	if !ok {
		return
	}

	if err := cc.store.DeleteComment(comment.ID); err != nil {
		respondInternalError(c, err, "delete comment")
		return
	}
	c.Status(http.StatusNoContent)
}

func (cc *CommentsController) resolveBook(c *gin.Context) (uint, bool) {
	bookID, ok := parseIDParam(c, "book_id")
	if !ok {
		return 0, false
	}
	if _, err := cc.books.GetBookByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return 0, false
		}
		respondInternalError(c, err, "get book")
		return 0, false
	}
	return bookID, true
}

// resolveOwnedComment loads a comment and enforces ownership. Missing
// comments report 404 before ownership is considered, so a 403 never
// leaks whether an id exists.
func (cc *CommentsController) resolveOwnedComment(c *gin.Context, id uint) (*entities.Comment, bool) {
	comment, err := cc.store.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "comment")
			return nil, false
		}
		respondInternalError(c, err, "get comment")
		return nil, false
	}
	if comment.UserID != auth.CurrentUserID(c) {
		respondForbidden(c)
		return nil, false
	}
	return comment, true
}
