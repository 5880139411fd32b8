package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mlefebvre/bookcatalog/internal/auth"
	"github.com/mlefebvre/bookcatalog/internal/config"
	"github.com/mlefebvre/bookcatalog/internal/database"
	"github.com/mlefebvre/bookcatalog/internal/database/authors"
	"github.com/mlefebvre/bookcatalog/internal/database/books"
	"github.com/mlefebvre/bookcatalog/internal/database/comments"
	"github.com/mlefebvre/bookcatalog/internal/database/ratings"
	"github.com/mlefebvre/bookcatalog/internal/database/tags"
)

// setupTestRouter builds the full router against a throwaway database
// so handler tests exercise the real middleware chain and stores.
func setupTestRouter(t *testing.T) (*gin.Engine, *database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	authConfig := config.Auth{
		JWTSecret:     "test-secret",
		TokenLifetime: time.Hour,
		BcryptCost:    bcrypt.MinCost,
	}
	tokens := auth.NewTokenManager(authConfig.JWTSecret, authConfig.TokenLifetime)
	authService := auth.NewService(db.DB, tokens, authConfig)

	router := NewRouter(RouterConfig{
		AuthorStore:  authors.NewRepository(db.DB),
		BookStore:    books.NewRepository(db.DB),
		TagStore:     tags.NewRepository(db.DB),
		CommentStore: comments.NewRepository(db.DB),
		RatingStore:  ratings.NewRepository(db.DB),
		AuthService:  authService,
		Database:     db,
		AllowOrigins: []string{"*"},
		Version:      "test",
	})

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, db, cleanup
}

func performRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerUser signs a user up and in, returning a usable bearer token.
func registerUser(t *testing.T, router *gin.Engine, username, email string) string {
	t.Helper()

	body := fmt.Sprintf(`{"username": %q, "email": %q, "password": "secret-pass"}`, username, email)
	w := performRequest(router, "POST", "/signup", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body = fmt.Sprintf(`{"email": %q, "password": "secret-pass"}`, email)
	w = performRequest(router, "POST", "/signin", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// createTestAuthor inserts an author through the API and returns its id.
func createTestAuthor(t *testing.T, router *gin.Engine, firstname, lastname string) uint {
	t.Helper()

	body := fmt.Sprintf(`{"firstname": %q, "lastname": %q}`, firstname, lastname)
	w := performRequest(router, "POST", "/authors", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}

// createTestBook inserts a book through the API and returns its id.
func createTestBook(t *testing.T, router *gin.Engine, authorID uint, titlename string, year int) uint {
	t.Helper()

	body := fmt.Sprintf(`{"titlename": %q, "publication_year": %d}`, titlename, year)
	w := performRequest(router, "POST", fmt.Sprintf("/authors/%d/books", authorID), body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ID
}
