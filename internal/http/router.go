package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mlefebvre/bookcatalog/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware(cfg.AllowOrigins))

	requireAuth := auth.RequireAuth(cfg.AuthService)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome on the API")
	})

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	authorsController := NewAuthorsController(cfg.AuthorStore)
	router.GET("/authors", authorsController.ListAuthors)
	router.POST("/authors", authorsController.CreateAuthor)
	router.GET("/authors/:author_id", authorsController.GetAuthor)
	router.PATCH("/authors/:author_id", authorsController.UpdateAuthor)
	router.DELETE("/authors/:author_id", authorsController.DeleteAuthor)

	booksController := NewBooksController(cfg.BookStore, cfg.AuthorStore)
	router.GET("/books", booksController.ListBooks)
	router.GET("/books/:book_id", booksController.GetBook)
	router.PATCH("/books/:book_id", booksController.UpdateBook)
	router.DELETE("/books/:book_id", booksController.DeleteBook)
	router.GET("/authors/:author_id/books", booksController.ListAuthorBooks)
	router.POST("/authors/:author_id/books", booksController.CreateBook)

	tagsController := NewTagsController(cfg.TagStore)
	router.GET("/tags", tagsController.ListTags)
	router.POST("/tags", tagsController.CreateTag)
	router.GET("/tags/:tag_id", tagsController.GetTag)
	router.PATCH("/tags/:tag_id", tagsController.UpdateTag)
	router.DELETE("/tags/:tag_id", tagsController.DeleteTag)
	router.GET("/books/:book_id/tags", tagsController.ListBookTags)
	router.POST("/books/:book_id/tags/:tag_id", tagsController.AttachTag)
	router.DELETE("/books/:book_id/tags/:tag_id", tagsController.DetachTag)

	usersController := NewUsersController(cfg.AuthService)
	router.POST("/signup", usersController.Signup)
	router.POST("/signin", usersController.Signin)

	commentsController := NewCommentsController(cfg.CommentStore, cfg.BookStore)
	router.GET("/books/:book_id/comments", commentsController.ListBookComments)
	router.POST("/books/:book_id/comments", requireAuth, commentsController.CreateComment)
	router.PATCH("/comments/:comment_id", requireAuth, commentsController.UpdateComment)
	router.DELETE("/comments/:comment_id", requireAuth, commentsController.DeleteComment)

	ratingsController := NewRatingsController(cfg.RatingStore, cfg.BookStore)
	router.GET("/books/:book_id/ratings", ratingsController.ListBookRatings)
	router.GET("/books/:book_id/ratings/average", ratingsController.GetAverageRating)
	router.POST("/books/:book_id/ratings", requireAuth, ratingsController.CreateRating)
	router.PATCH("/ratings/:rating_id", requireAuth, ratingsController.UpdateRating)
	router.DELETE("/ratings/:rating_id", requireAuth, ratingsController.DeleteRating)

	return router
}
