package container

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"library-api/internal/config"
	"library-api/pkg/database"

	"library-api/internal/domains/author"
	authorHandler "library-api/internal/domains/author/handler"
	authorRepo "library-api/internal/domains/author/repository"
	authorService "library-api/internal/domains/author/service"

	"library-api/internal/domains/book"
	bookHandler "library-api/internal/domains/book/handler"
	bookRepo "library-api/internal/domains/book/repository"
	bookService "library-api/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton with the lifetime of the process; the database handle is
// the only stateful member and is closed via Cleanup at shutdown.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.DB

	// Repositories (data access)
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Services (business logic)
	AuthorService author.Service
	BookService   book.Service

	// Handlers (HTTP)
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainerWithConfig builds the graph from an explicit config.
// Tests use this with TestMode set to get an isolated in-memory store.
//
// Initialization order matters: infrastructure → repositories →
// services → handlers.
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: DATABASE
	// ========================================
	db, err := database.Connect(cfg.Database.Path, cfg.Database.TestMode)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	c.DB = db

	log.Info().
		Bool("test_mode", cfg.Database.TestMode).
		Str("path", cfg.Database.Path).
		Msg("Database ready")

	// ========================================
	// STEP 2: REPOSITORIES
	// ========================================
	c.AuthorRepo = authorRepo.NewSQLiteRepository(db.Conn)
	c.BookRepo = bookRepo.NewSQLiteRepository(db.Conn)

	// ========================================
	// STEP 3: SERVICES
	// ========================================
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)

	// ========================================
	// STEP 4: HANDLERS
	// ========================================
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases held resources. Call once, at shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
}
