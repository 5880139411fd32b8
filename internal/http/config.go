package http

import (
	"github.com/mlefebvre/bookcatalog/internal/auth"
	"github.com/mlefebvre/bookcatalog/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Stores
	AuthorStore  AuthorStore
	BookStore    BookStore
	TagStore     TagStore
	CommentStore CommentStore
	RatingStore  RatingStore

	// Authentication
	AuthService *auth.Service

	// Health checks
	Database *database.Database

	// CORS
	AllowOrigins []string

	// Application info
	Version string
}
