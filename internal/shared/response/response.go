// Package response writes the API's JSON bodies. The shapes are part of
// the public contract: success payloads are the bare rows, mutations
// reply with {message, <id>}, validation failures with {message, errors}
// and unhandled errors with {error: {message, stack}}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends the payload as-is with 200. Used for single rows and lists.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Message sends {message} with the given status.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// Created sends 201 with a message and the generated id under idField
// ("authorId" or "bookId").
func Created(c *gin.Context, message, idField string, id int64) {
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		idField:   id,
	})
}

// NotFound sends 404 with a descriptive message.
func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

// ValidationFailed sends 400 with the field→message map collected by the
// validation layer.
func ValidationFailed(c *gin.Context, errors interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  errors,
	})
}

// ServerError is the shape of the process-wide error handler's payload.
// Stack stays empty unless debug mode is enabled.
type ServerError struct {
	Message string `json:"message"`
	Stack   string `json:"stack"`
}

// Error sends {error: {message, stack}} with the given status.
func Error(c *gin.Context, statusCode int, message, stack string) {
	c.JSON(statusCode, gin.H{
		"error": ServerError{Message: message, Stack: stack},
	})
}
