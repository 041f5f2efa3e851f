package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/request"
)

// CreateAuthorRequest - POST /api/authors
type CreateAuthorRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required.Error("First name is required"), request.NotBlank),
		validation.Field(&r.LastName, validation.Required.Error("Last name is required"), request.NotBlank),
	)
}

// PatchAuthorRequest - PATCH /api/authors/:authorId
// Both fields optional; the handler rejects a payload where neither is
// present.
type PatchAuthorRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (r PatchAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, request.NotBlank),
		validation.Field(&r.LastName, request.NotBlank),
	)
}

// ToPatch converts the validated request into the typed column patch,
// trimming surrounding whitespace on the way in.
func (r PatchAuthorRequest) ToPatch() Patch {
	p := Patch{}
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		p.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		p.LastName = &v
	}
	return p
}
