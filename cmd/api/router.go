package main

import (
	"context"
	"net/http"
	"time"

	"library-backend/internal/shared/middleware"
	"library-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.Identity(c.Config.Library.IdentitySecret),
		middleware.Language(c.Config.Library.DefaultLanguage),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupBookRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupAssistantRoutes(v1, c)

		v1.GET("/covers/:name", c.CoverHandler.Get)
	}

	return router
}

func setupBookRoutes(v1 *gin.RouterGroup, c *container.Container) {
	books := v1.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/search", c.BookHandler.Search)
		books.GET("/:id", c.BookHandler.GetByID)
		books.GET("/:id/download", c.BookHandler.Download)
		books.POST("", c.BookHandler.Create)
		books.DELETE("/:id", c.BookHandler.Delete)

		books.POST("/:id/abstract", c.AssistantHandler.GenerateAbstract)
		books.POST("/:id/annotation", c.AssistantHandler.GenerateAnnotation)
	}
}

func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("/:key/entries", c.CategoryHandler.CreateEntry)
	}
}

func setupAssistantRoutes(v1 *gin.RouterGroup, c *container.Container) {
	assistant := v1.Group("/assistant")
	{
		assistant.POST("/search", c.AssistantHandler.Search)
	}
}

func healthCheckHandler(app *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   app.Config.App.Version,
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := app.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := app.Cache.Ping(ctx); err != nil {
			redisStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}
		c.JSON(statusCode, health)
	}
}
