package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/domains/author"
	"library-api/internal/shared/request"
	"library-api/internal/shared/response"
)

// AuthorHandler holds the thin HTTP layer for authors. Every handler
// runs the same machine: validate → execute → interpret. Infrastructure
// errors are attached to the context for the process-wide handler.
type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// respondInvalid writes the 400 payload for a failed validation, or
// forwards a non-validation error to the shared handler.
func respondInvalid(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}
	_ = c.Error(err)
}

// ════════════════════════════════════════════════════════════════
// LIST: GET /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, authors)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Get(c *gin.Context) {
	id, verrs := request.ParseID("authorId", c.Param("authorId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		_ = c.Error(err)
		return
	}

	response.OK(c, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
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
		_ = c.Error(err)
		return
	}

	response.Created(c, "Author created successfully", "authorId", id)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PATCH /api/authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, verrs := request.ParseID("authorId", c.Param("authorId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	var req author.PatchAuthorRequest
	if verrs := request.DecodeStrict(c, &req); verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}
	if err := req.Validate(); err != nil {
		respondInvalid(c, err)
		return
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		response.ValidationFailed(c, request.EmptyPatch())
		return
	}

	changed, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		_ = c.Error(err)
		return
	}

	if !changed {
		response.Message(c, 200, "No changes applied to author")
		return
	}

	response.Message(c, 200, "Author updated successfully")
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/authors/:authorId
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, verrs := request.ParseID("authorId", c.Param("authorId"))
	if verrs != nil {
		response.ValidationFailed(c, verrs)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, author.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found")
			return
		}
		_ = c.Error(err)
		return
	}

	response.Message(c, 200, "Author deleted successfully")
}
