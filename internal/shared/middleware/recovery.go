package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"library-api/internal/shared/response"
)

// Recovery converts a panic anywhere in the handler chain into the same
// {error: {message, stack}} payload the error handler produces, instead
// of dropping the connection.
func Recovery(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("Panic recovered")

				stack := ""
				if debugMode {
					stack = string(debug.Stack())
				}

				response.Error(c, http.StatusInternalServerError, fmt.Sprintf("%v", r), stack)
				c.Abort()
			}
		}()

		c.Next()
	}
}
