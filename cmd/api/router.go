package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/apperr"
	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

// SetupRouter wires the middleware chain and the resource routes.
// Routing carries no logic of its own; everything interesting happens
// in the handlers.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	debugMode := c.Config.App.Debug

	// Global middlewares
	router.Use(
		middleware.Recovery(debugMode),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.RateLimit(50, 100),
		middleware.ErrorHandler(debugMode),
	)

	// Fallbacks for paths and methods the routes above don't cover. The
	// errors declare their own status, which the shared handler honors.
	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.New(http.StatusNotFound, "Resource not found"))
	})
	router.NoMethod(func(c *gin.Context) {
		_ = c.Error(apperr.New(http.StatusMethodNotAllowed, "Method not allowed"))
	})

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:authorId", c.AuthorHandler.Get)
		authors.POST("", c.AuthorHandler.Create)
		authors.PATCH("/:authorId", c.AuthorHandler.Update)
		authors.DELETE("/:authorId", c.AuthorHandler.Delete)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:bookId", c.BookHandler.Get)
		books.POST("", c.BookHandler.Create)
		books.PATCH("/:bookId", c.BookHandler.Update)
		books.DELETE("/:bookId", c.BookHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "error: " + err.Error()
		}

		c.JSON(status, gin.H{
			"status":    dbStatus,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
