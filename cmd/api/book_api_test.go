package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domains/book"
)

func TestListBooks(t *testing.T) {
	router := newTestAPI(t)

	w := getJSON(t, router, "/api/books")
	require.Equal(t, http.StatusOK, w.Code)

	var books []book.BookWithAuthor
	decodeBody(t, w, &books)
	require.Len(t, books, 15)

	first := books[0]
	assert.Equal(t, "The Hobbit", first.Title)
	assert.Equal(t, 1937, first.Year)
	assert.Equal(t, "J.R.R.", first.FirstName)
	assert.Equal(t, "Tolkien", first.LastName)
}

func TestGetBook(t *testing.T) {
	router := newTestAPI(t)

	w := getJSON(t, router, "/api/books/2")
	require.Equal(t, http.StatusOK, w.Code)

	var b book.BookWithAuthor
	decodeBody(t, w, &b)
	assert.Equal(t, int64(2), b.BookID)
	assert.Equal(t, "Murder on the Orient Express", b.Title)
	assert.Equal(t, "mystery", b.Genre)
	assert.Equal(t, "Agatha", b.FirstName)
	assert.Equal(t, "Christie", b.LastName)
}

func TestGetBookIDCoercion(t *testing.T) {
	router := newTestAPI(t)

	for _, id := range []string{"abc", "-1", "0"} {
		w := getJSON(t, router, "/api/books/"+id)
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q should be rejected", id)
	}
}

func TestGetBookNotFound(t *testing.T) {
	router := newTestAPI(t)

	w := getJSON(t, router, "/api/books/9000")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBook(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/books", map[string]interface{}{
		"title":           "The Two Towers",
		"year":            1954,
		"pages":           352,
		"genre":           "fantasy",
		"authorFirstName": "J.R.R.",
		"authorLastName":  "Tolkien",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string `json:"message"`
		BookID  int64  `json:"bookId"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.Message)
	require.Positive(t, created.BookID)

	got := getJSON(t, router, "/api/books/16")
	require.Equal(t, http.StatusOK, got.Code)

	var b book.BookWithAuthor
	decodeBody(t, got, &b)
	assert.Equal(t, "The Two Towers", b.Title)
	assert.Equal(t, "Tolkien", b.LastName)
}

func TestCreateBookUnknownAuthor(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/books", map[string]interface{}{
		"title":           "Ghost Book",
		"year":            2020,
		"pages":           100,
		"genre":           "fiction",
		"authorFirstName": "No",
		"authorLastName":  "Body",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no row inserted
	list := getJSON(t, router, "/api/books")
	var books []book.BookWithAuthor
	decodeBody(t, list, &books)
	assert.Len(t, books, 15)
}

func TestCreateBookInvalidGenre(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPost, "/api/books", map[string]interface{}{
		"title":           "Leviathan Wakes",
		"year":            2011,
		"pages":           561,
		"genre":           "space-opera",
		"authorFirstName": "J.R.R.",
		"authorLastName":  "Tolkien",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var payload struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decodeBody(t, w, &payload)
	assert.Contains(t, payload.Errors, "genre")

	list := getJSON(t, router, "/api/books")
	var books []book.BookWithAuthor
	decodeBody(t, list, &books)
	assert.Len(t, books, 15)
}

func TestCreateBookValidation(t *testing.T) {
	router := newTestAPI(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing title", map[string]interface{}{"year": 2000, "pages": 100, "genre": "fiction", "authorFirstName": "A", "authorLastName": "B"}},
		{"zero year", map[string]interface{}{"title": "T", "year": 0, "pages": 100, "genre": "fiction", "authorFirstName": "A", "authorLastName": "B"}},
		{"negative pages", map[string]interface{}{"title": "T", "year": 2000, "pages": -5, "genre": "fiction", "authorFirstName": "A", "authorLastName": "B"}},
		{"non-integer year", map[string]interface{}{"title": "T", "year": 1999.5, "pages": 100, "genre": "fiction", "authorFirstName": "A", "authorLastName": "B"}},
		{"unknown field", map[string]interface{}{"title": "T", "year": 2000, "pages": 100, "genre": "fiction", "authorFirstName": "A", "authorLastName": "B", "isbn": "123"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/books", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPatchBookPartialUpdate(t *testing.T) {
	router := newTestAPI(t)

	// Book 3 is "American Gods" (2001, 480 pages, fantasy, author 3).
	w := doRequest(t, router, http.MethodPatch, "/api/books/3", map[string]interface{}{
		"year":     2000,
		"pages":    500,
		"authorId": 3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := getJSON(t, router, "/api/books/3")
	require.Equal(t, http.StatusOK, got.Code)

	var b book.BookWithAuthor
	decodeBody(t, got, &b)
	assert.Equal(t, 2000, b.Year)
	assert.Equal(t, 500, b.Pages)
	assert.Equal(t, "American Gods", b.Title, "unspecified field must be unchanged")
	assert.Equal(t, "fantasy", b.Genre, "unspecified field must be unchanged")
}

func TestPatchBookReassignAuthor(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPatch, "/api/books/3", map[string]interface{}{
		"genre":    "horror",
		"authorId": 9,
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := getJSON(t, router, "/api/books/3")
	var b book.BookWithAuthor
	decodeBody(t, got, &b)
	assert.Equal(t, "Stephen", b.FirstName)
	assert.Equal(t, "King", b.LastName)
	assert.Equal(t, "horror", b.Genre)
}

func TestPatchBookNotFound(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPatch, "/api/books/1000000", map[string]interface{}{
		"year":     2000,
		"authorId": 3,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchBookDanglingAuthor(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodPatch, "/api/books/3", map[string]interface{}{
		"year":     1999,
		"authorId": 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no column changed
	got := getJSON(t, router, "/api/books/3")
	var b book.BookWithAuthor
	decodeBody(t, got, &b)
	assert.Equal(t, 2001, b.Year)
}

func TestPatchBookValidation(t *testing.T) {
	router := newTestAPI(t)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing authorId", map[string]interface{}{"year": 2000}},
		{"only authorId", map[string]interface{}{"authorId": 3}},
		{"zero authorId", map[string]interface{}{"year": 2000, "authorId": 0}},
		{"bad genre", map[string]interface{}{"genre": "space-opera", "authorId": 3}},
		{"empty genre", map[string]interface{}{"genre": "", "authorId": 3}},
		{"empty body", map[string]interface{}{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPatch, "/api/books/3", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestDeleteBookThenGet(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodDelete, "/api/books/3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, getJSON(t, router, "/api/books/3").Code)

	// the author survives the book's deletion
	assert.Equal(t, http.StatusOK, getJSON(t, router, "/api/authors/3").Code)
}

func TestDeleteBookNotFound(t *testing.T) {
	router := newTestAPI(t)

	w := doRequest(t, router, http.MethodDelete, "/api/books/9000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
