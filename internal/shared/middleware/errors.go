package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/apperr"
	"library-api/internal/shared/response"
)

// ErrorHandler is the process-wide error handler. Handlers never write a
// response for persistence or other unexpected failures; they attach the
// error with c.Error and abort, and this middleware turns the last
// attached error into {error: {message, stack}}.
//
// The status comes from the error's own declared code when it is a valid
// integer, otherwise 500. The stack is only populated in debug mode.
func ErrorHandler(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err

		status := http.StatusInternalServerError
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.ValidStatus() {
			status = ae.Status
		}

		message := err.Error()
		if message == "" {
			message = "Server error"
		}

		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Err(err).
			Msg("Unhandled error")

		stack := ""
		if debugMode {
			stack = string(debug.Stack())
		}

		if !c.Writer.Written() {
			response.Error(c, status, message, stack)
		}
	}
}
