package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefebvre/bookcatalog/internal/entities"
)

func TestListBooksEndpoint(t *testing.T) {
	t.Run("take defaults to five", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		authorID := createTestAuthor(t, router, "Frank", "Herbert")
		for i := 0; i < 7; i++ {
			createTestBook(t, router, authorID, fmt.Sprintf("Book %d", i), 1965)
		}

		w := performRequest(router, "GET", "/books", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "7", w.Header().Get("X-Total-Count"))

		var page []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page, 5)
	})

	t.Run("include=author embeds the author", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		authorID := createTestAuthor(t, router, "Frank", "Herbert")
		createTestBook(t, router, authorID, "Dune", 1965)

		w := performRequest(router, "GET", "/books?include=author", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var page []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page, 1)
		require.NotNil(t, page[0].Author)
		assert.Equal(t, "Herbert", page[0].Author.Lastname)
	})

	t.Run("rejects unknown include values", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/books?include=tags", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthorBooksEndpoints(t *testing.T) {
	t.Run("listing for a missing author returns 404", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/authors/999/books", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("listing is scoped to the author", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		herbert := createTestAuthor(t, router, "Frank", "Herbert")
		asimov := createTestAuthor(t, router, "Isaac", "Asimov")
		createTestBook(t, router, herbert, "Dune", 1965)
		createTestBook(t, router, asimov, "Foundation", 1951)

		w := performRequest(router, "GET", fmt.Sprintf("/authors/%d/books", asimov), "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

		var page []entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page, 1)
		assert.Equal(t, "Foundation", page[0].Titlename)
	})

	t.Run("creation under a missing author returns 404", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "POST", "/authors/999/books",
			`{"titlename": "Dune", "publication_year": 1965}`, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("creation validates the payload", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		authorID := createTestAuthor(t, router, "Frank", "Herbert")
		w := performRequest(router, "POST", fmt.Sprintf("/authors/%d/books", authorID),
			`{"titlename": "Dune"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookCRUDEndpoints(t *testing.T) {
	t.Run("get returns 404 for a missing book", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/books/999", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("update can move a book to another author", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		herbert := createTestAuthor(t, router, "Frank", "Herbert")
		brian := createTestAuthor(t, router, "Brian", "Herbert")
		bookID := createTestBook(t, router, herbert, "Dune", 1965)

		w := performRequest(router, "PATCH", fmt.Sprintf("/books/%d", bookID),
			fmt.Sprintf(`{"titlename": "Dune", "author_id": %d}`, brian), "")
		assert.Equal(t, http.StatusOK, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, brian, book.AuthorID)
	})

	t.Run("update to a missing author returns 404", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		authorID := createTestAuthor(t, router, "Frank", "Herbert")
		bookID := createTestBook(t, router, authorID, "Dune", 1965)

		w := performRequest(router, "PATCH", fmt.Sprintf("/books/%d", bookID),
			`{"titlename": "Dune", "author_id": 999}`, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete returns 204 then 404", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		authorID := createTestAuthor(t, router, "Frank", "Herbert")
		bookID := createTestBook(t, router, authorID, "Dune", 1965)

		w := performRequest(router, "DELETE", fmt.Sprintf("/books/%d", bookID), "", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = performRequest(router, "DELETE", fmt.Sprintf("/books/%d", bookID), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
