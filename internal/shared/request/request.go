// Package request converts raw HTTP input into typed values before any
// domain code runs. Decoding is strict: unknown fields, trailing data
// and type mismatches are all rejected up front.
package request

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrEmptyPatch is reported when a patch payload validates but carries
// no effective field to change.
var ErrEmptyPatch = errors.New("You must provide at least one field to update.")

// DecodeStrict decodes the request body into dst, rejecting unknown
// fields and anything after the first JSON value.
func DecodeStrict(c *gin.Context, dst interface{}) validation.Errors {
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return validation.Errors{"body": err}
	}
	if dec.More() {
		return validation.Errors{"body": errors.New("body must contain a single JSON object")}
	}
	return nil
}

// ParseID coerces a route parameter into a positive integer identifier.
// Non-numeric, zero, negative and non-integer values are rejected with a
// field-level message keyed by the parameter name.
func ParseID(param, raw string) (int64, validation.Errors) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.Errors{param: errors.New("must be a positive integer")}
	}
	return id, nil
}

// EmptyPatch builds the validation payload for a patch with nothing to
// change.
func EmptyPatch() validation.Errors {
	return validation.Errors{"body": ErrEmptyPatch}
}
