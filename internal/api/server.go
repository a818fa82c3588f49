package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"sheetsync/internal/api/handlers"
	"sheetsync/internal/api/middleware"
	"sheetsync/internal/config"
	"sheetsync/internal/logger"
	"sheetsync/internal/syncer"

	"github.com/gin-gonic/gin"
)

// BasePath prefixes every route.
const BasePath = "/sheetsync/v1"

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, components *syncer.Components) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Initialize handlers
	optionsHandler := handlers.NewOptionsHandler(components.Settings, logger)
	credentialsHandler := handlers.NewCredentialsHandler(components.Credentials, logger)
	webhookHandler := handlers.NewWebhookHandler(components.Orchestrator, logger)
	productHandler := handlers.NewProductHandler(components.Products, components.Orchestrator, logger)
	eventHandler := handlers.NewSyncEventHandler(components.Events, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Routes
	v1 := router.Group(BasePath)
	{
		// Sheet webhook
		v1.POST("/sync-from-sheet", middleware.VerifySignature(cfg.WebhookSecret), webhookHandler.SyncFromSheet)

		admin := v1.Group("", middleware.RequireAdmin(cfg.JWTSecret))

		// Settings
		admin.POST("/update-options", optionsHandler.Update)
		admin.GET("/get-options", optionsHandler.Get)
		admin.POST("/upload-credentials", credentialsHandler.Upload)
		admin.GET("/get-credentials-data", credentialsHandler.Get)

		// Products
		products := admin.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/sync", productHandler.Sync)
		}

		// Sync events
		events := admin.Group("/sync-events")
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
		}
	}

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}
