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

func TestListAuthorsEndpoint(t *testing.T) {
	t.Run("returns empty list and zero total on an empty catalog", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/authors", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-Total-Count"))
	})

	t.Run("X-Total-Count reflects the filter, not the page size", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		for i := 0; i < 12; i++ {
			createTestAuthor(t, router, "Jane", fmt.Sprintf("Writer%02d", i))
		}

		w := performRequest(router, "GET", "/authors?skip=0&take=5", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12", w.Header().Get("X-Total-Count"))

		var page []entities.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page, 5)
	})

	t.Run("take defaults to ten", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		for i := 0; i < 12; i++ {
			createTestAuthor(t, router, "Jane", fmt.Sprintf("Writer%02d", i))
		}

		w := performRequest(router, "GET", "/authors", "", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var page []entities.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Len(t, page, 10)
	})

	t.Run("rejects malformed pagination before touching the store", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		for _, query := range []string{"skip=abc", "take=abc", "skip=-1", "take=-1", "skip=1.5"} {
			w := performRequest(router, "GET", "/authors?"+query, "", "")
			assert.Equal(t, http.StatusBadRequest, w.Code, query)
		}
	})

	t.Run("rejects unknown hasBooks and include values", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/authors?hasBooks=maybe", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performRequest(router, "GET", "/authors?include=highlights", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("filters by lastname substring", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		createTestAuthor(t, router, "Frank", "Herbert")
		createTestAuthor(t, router, "Isaac", "Asimov")

		w := performRequest(router, "GET", "/authors?lastnameInput=herb", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

		var page []entities.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		require.Len(t, page, 1)
		assert.Equal(t, "Herbert", page[0].Lastname)
	})
}

func TestAuthorCRUDEndpoints(t *testing.T) {
	t.Run("create validates the payload", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "POST", "/authors", `{"firstname": "Frank"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = performRequest(router, "POST", "/authors", `{"firstname": "", "lastname": ""}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("get returns 404 for a missing author", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/authors/999", "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get rejects a non-integer id", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		w := performRequest(router, "GET", "/authors/abc", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update returns the stored entity", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		id := createTestAuthor(t, router, "Frank", "Herbert")

		w := performRequest(router, "PATCH", fmt.Sprintf("/authors/%d", id),
			`{"firstname": "Brian", "lastname": "Herbert"}`, "")
		assert.Equal(t, http.StatusOK, w.Code)

		var author entities.Author
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &author))
		assert.Equal(t, "Brian", author.Firstname)
	})

	t.Run("delete returns 204 then 404", func(t *testing.T) {
		router, _, cleanup := setupTestRouter(t)
		defer cleanup()

		id := createTestAuthor(t, router, "Frank", "Herbert")

		w := performRequest(router, "DELETE", fmt.Sprintf("/authors/%d", id), "", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = performRequest(router, "DELETE", fmt.Sprintf("/authors/%d", id), "", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
