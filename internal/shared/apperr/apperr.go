// Package apperr defines the error type the process-wide handler
// understands. An error may declare its own HTTP status; anything else
// is reported as a plain 500.
package apperr

// Error carries an HTTP status alongside the message. It wraps the
// underlying cause so errors.Is/As keep working through it.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Server error"
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with an explicit status.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// ValidStatus reports whether the declared status is a usable HTTP
// status code. Nonsensical codes fall back to 500 at the handler.
func (e *Error) ValidStatus() bool {
	return e.Status >= 100 && e.Status <= 599
}
