package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"adaptly/internal/adaptation"
	"adaptly/internal/api/handlers"
	"adaptly/internal/api/middleware"
	"adaptly/internal/config"
	"adaptly/internal/logger"
	"adaptly/internal/store"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, db *store.Store, engine *adaptation.Engine) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize handlers
	productHandler := handlers.NewProductHandler(db.DB, logger)
	channelHandler := handlers.NewChannelHandler(engine.Registry(), logger)
	adaptHandler := handlers.NewAdaptHandler(engine, db, logger)

	// Routes
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		// Products (catalog surface; the engine itself only reads)
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.POST("/:id/adapt/:channel", adaptHandler.AdaptStored)
		}

		// Channel schemas
		channels := v1.Group("/channels")
		{
			channels.GET("", channelHandler.List)
			channels.GET("/:id", channelHandler.Get)
		}

		// Adaptation without a stored record
		adapt := v1.Group("/adapt")
		{
			adapt.POST("/:channel", adaptHandler.Preview)
			adapt.POST("/:channel/bulk", adaptHandler.Bulk)
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
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Router exposes the gin router for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
