// Package container wires the application's dependency graph.
// Initialization order matters: config, then infrastructure, then
// repositories, services, and handlers.
package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/ai"
	infracache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/internal/infrastructure/storage"
	"library-backend/internal/shared/access"
	"library-backend/pkg/cache"

	"library-backend/internal/domains/assistant"
	assistantHandler "library-backend/internal/domains/assistant/handler"
	assistantService "library-backend/internal/domains/assistant/service"
	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/category"
	categoryHandler "library-backend/internal/domains/category/handler"
	categoryRepo "library-backend/internal/domains/category/repository"
	categoryService "library-backend/internal/domains/category/service"

	"github.com/rs/zerolog/log"
)

type Container struct {
	Config    *config.Config
	DB        *database.PostgresDB
	Cache     cache.Cache
	Documents storage.Store
	Covers    storage.Store
	Completer ai.Completer
	Policy    access.Policy

	BookRepo     book.Repository
	CategoryRepo category.Repository

	BookService      book.Service
	CategoryService  category.Service
	AssistantService assistant.Service

	BookHandler      *bookHandler.BookHandler
	CoverHandler     *bookHandler.CoverHandler
	CategoryHandler  *categoryHandler.CategoryHandler
	AssistantHandler *assistantHandler.AssistantHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	db := database.NewPostgresDB(cfg.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		// Cache misses are survivable; the list endpoint just hits postgres.
		log.Warn().Err(err).Msg("redis unreachable, continuing without warm cache")
	}
	c.Cache = redisCache

	documents, covers, err := storage.NewBuckets(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %w", err)
	}
	c.Documents = documents
	c.Covers = covers

	c.Completer = ai.NewClient(cfg.OpenAI)
	c.Policy = access.NewSingleWriterPolicy(cfg.Library.WriterEmail)

	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(db.Pool)

	c.BookService = bookService.NewBookService(c.BookRepo, c.Policy, c.Documents, c.Covers)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.BookRepo, c.Policy, c.Covers)
	c.AssistantService = assistantService.NewAssistantService(c.BookRepo, c.Completer)

	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CoverHandler = bookHandler.NewCoverHandler(c.Covers)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.AssistantHandler = assistantHandler.NewAssistantHandler(c.AssistantService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infracache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
}
