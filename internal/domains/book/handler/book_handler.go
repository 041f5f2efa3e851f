package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/domains/author"
	"library-api/internal/domains/book"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// BookHandler holds the thin HTTP layer for books. Referential misses
// (author name pair or author id that matches nothing) answer 404 with
// a descriptive message, by design not 409.
type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

func respondInvalid(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}
	_ = c.Error(err)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, books)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/books/:bookId
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Get(c *gin.Context) {
	id, verrs := request.ParseID("bookId", c.Param("bookId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		_ = c.Error(err)
		return
	}

	response.OK(c, b)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
	if verrs := request.DecodeStrict(c, &req); verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	if err := req.Validate(); err != nil {
		respondInvalid(c, err)
		return
	}

	id, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found. Add the author before adding their book.")
			return
		}
		_ = c.Error(err)
		return
	}

	response.Created(c, "Book created successfully", "bookId", id)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /api/books/:bookId
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Update(c *gin.Context) {
	id, verrs := request.ParseID("bookId", c.Param("bookId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	var req book.PatchBookRequest
	if verrs := request.DecodeStrict(c, &req); verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	if err := req.Validate(); err != nil {
		respondInvalid(c, err)
		return
	}

	patch := req.ToPatch()
	if !patch.HasChanges() {
		response.ValidationFailed(c, request.EmptyPatch())
		return
	}

	changed, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, book.ErrBookNotFound):
			response.NotFound(c, "Book not found")
		case errors.Is(err, author.ErrAuthorNotFound):
			response.NotFound(c, "Author not found")
		default:
			_ = c.Error(err)
		}
		return
	}

	if !changed {
		response.Message(c, 200, "No changes applied to book")
		return
	}

	response.Message(c, 200, "Book updated successfully")
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/books/:bookId
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) Delete(c *gin.Context) {
	id, verrs := request.ParseID("bookId", c.Param("bookId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
			return
		}
		_ = c.Error(err)
		return
	}

	response.Message(c, 200, "Book deleted successfully")
}
