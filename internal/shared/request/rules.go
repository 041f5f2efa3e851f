package request

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// NotBlank rejects strings that are empty once trimmed. Nil pointers
// (absent optional fields) pass; presence is a separate check.
var NotBlank = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
})

// PositiveInt rejects integers below one. Unlike validation.Min it does
// not treat an explicit zero as "empty and skippable", which matters for
// patch payloads like {"year": 0}.
var PositiveInt = validation.By(func(value interface{}) error {
	v, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	n, ok := v.(int)
	if !ok {
		n64, ok64 := v.(int64)
		if !ok64 {
			return errors.New("must be an integer")
		}
		n = int(n64)
	}
	if n < 1 {
		return errors.New("must be a positive integer")
	}
	return nil
})
