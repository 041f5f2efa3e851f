package book

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	return errs
}

func validCreate() CreateBookRequest {
	return CreateBookRequest{
		Title:           "The Left Hand of Darkness",
		Year:            1969,
		Pages:           304,
		Genre:           "sci-fi",
		AuthorFirstName: "Ursula K.",
		AuthorLastName:  "Le Guin",
	}
}

func TestCreateBookRequestValidate(t *testing.T) {
	assert.NoError(t, validCreate().Validate())

	t.Run("unknown genre", func(t *testing.T) {
		r := validCreate()
		r.Genre = "space-opera"
		errs := fieldErrors(t, r.Validate())
		assert.Contains(t, errs, "genre")
	})

	t.Run("zero year", func(t *testing.T) {
		r := validCreate()
		r.Year = 0
		errs := fieldErrors(t, r.Validate())
		assert.Contains(t, errs, "year")
	})

	t.Run("negative pages", func(t *testing.T) {
		r := validCreate()
		r.Pages = -10
		errs := fieldErrors(t, r.Validate())
		assert.Contains(t, errs, "pages")
	})

	t.Run("blank author name", func(t *testing.T) {
		r := validCreate()
		r.AuthorLastName = "  "
		errs := fieldErrors(t, r.Validate())
		assert.Contains(t, errs, "authorLastName")
	})
}

func TestPatchBookRequestValidate(t *testing.T) {
	year := 1972

	assert.NoError(t, PatchBookRequest{Year: &year, AuthorID: 3}.Validate())

	t.Run("missing authorId", func(t *testing.T) {
		errs := fieldErrors(t, PatchBookRequest{Year: &year}.Validate())
		assert.Contains(t, errs, "authorId")
	})

	t.Run("explicit zero year", func(t *testing.T) {
		zero := 0
		errs := fieldErrors(t, PatchBookRequest{Year: &zero, AuthorID: 3}.Validate())
		assert.Contains(t, errs, "year")
	})

	t.Run("unknown genre", func(t *testing.T) {
		genre := "space-opera"
		errs := fieldErrors(t, PatchBookRequest{Genre: &genre, AuthorID: 3}.Validate())
		assert.Contains(t, errs, "genre")
	})

	t.Run("explicit empty genre", func(t *testing.T) {
		genre := ""
		errs := fieldErrors(t, PatchBookRequest{Genre: &genre, AuthorID: 3}.Validate())
		assert.Contains(t, errs, "genre")
	})
}

func TestPatchBookRequestToPatch(t *testing.T) {
	title := "  Coraline  "
	year := 2002

	p := PatchBookRequest{Title: &title, Year: &year, AuthorID: 3}.ToPatch()

	require.NotNil(t, p.Title)
	assert.Equal(t, "Coraline", *p.Title)
	assert.Equal(t, int64(3), p.AuthorID)
	assert.True(t, p.HasChanges())

	// authorId alone does not count as a change
	assert.False(t, PatchBookRequest{AuthorID: 3}.ToPatch().HasChanges())
}

func TestGenresAreClosed(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"fiction", "non-fiction", "mystery", "fantasy",
		"romance", "sci-fi", "horror",
	}, Genres)
}
