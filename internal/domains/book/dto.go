package book

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-api/internal/shared/request"
)

// inGenres rejects any present genre outside the enumerated set. Unlike
// validation.In it does not treat an explicit empty string as absent,
// so {"genre": ""} on a patch fails here instead of at the schema CHECK
// constraint.
var inGenres = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	for _, g := range Genres {
		if s == g {
			return nil
		}
	}
	return errors.New("must be one of: " + strings.Join(Genres, ", "))
})

// CreateBookRequest - POST /api/books
// The author is referenced by name, not id; the service resolves the
// pair against the author table and refuses to create implicitly.
type CreateBookRequest struct {
	Title           string `json:"title"`
	Year            int    `json:"year"`
	Pages           int    `json:"pages"`
	Genre           string `json:"genre"`
	AuthorFirstName string `json:"authorFirstName"`
	AuthorLastName  string `json:"authorLastName"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("Title is required"), request.NotBlank),
		validation.Field(&r.Year, validation.Required.Error("Year is required"), request.PositiveInt),
		validation.Field(&r.Pages, validation.Required.Error("Pages is required"), request.PositiveInt),
		validation.Field(&r.Genre, validation.Required.Error("Genre is required"), inGenres),
		validation.Field(&r.AuthorFirstName, validation.Required.Error("Author first name is required"), request.NotBlank),
		validation.Field(&r.AuthorLastName, validation.Required.Error("Author last name is required"), request.NotBlank),
	)
}

// PatchBookRequest - PATCH /api/books/:bookId
// All attributes optional, but authorId is required on every patch even
// when the author is not being reassigned. The handler additionally
// rejects payloads with nothing besides authorId.
type PatchBookRequest struct {
	Title    *string `json:"title"`
	Year     *int    `json:"year"`
	Pages    *int    `json:"pages"`
	Genre    *string `json:"genre"`
	AuthorID int64   `json:"authorId"`
}

func (r PatchBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, request.NotBlank),
		validation.Field(&r.Year, request.PositiveInt),
		validation.Field(&r.Pages, request.PositiveInt),
		validation.Field(&r.Genre, inGenres),
		validation.Field(&r.AuthorID, validation.Required.Error("Author id is required"), request.PositiveInt),
	)
}

// ToPatch converts the validated request into the typed column patch.
func (r PatchBookRequest) ToPatch() Patch {
	p := Patch{AuthorID: r.AuthorID}
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		p.Title = &v
	}
	p.Year = r.Year
	p.Pages = r.Pages
	if r.Genre != nil {
		v := *r.Genre
		p.Genre = &v
	}
	return p
}
