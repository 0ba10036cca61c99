package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/property-locator/internal/config"
	"github.com/property-locator/internal/delivery/http/handler"
	"github.com/property-locator/internal/delivery/http/middleware"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/usecase/dto"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	propertyHandler *handler.PropertyHandler
	statsHandler    *handler.StatsHandler

	rateLimiter repository.RateLimiter
}

// NewServer - создание нового HTTP сервера.
// statsHandler может быть nil (аналитика выключена) - тогда /api/v1/stats не регистрируется.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	propertyHandler *handler.PropertyHandler,
	statsHandler *handler.StatsHandler,
	rateLimiter repository.RateLimiter,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Property Locator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		propertyHandler: propertyHandler,
		statsHandler:    statsHandler,
		rateLimiter:     rateLimiter,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	limited := middleware.RateLimit(s.rateLimiter, s.logger)

	// Корневые маршруты сохраняют исходный контракт API
	s.app.Get("/health", healthCheck)
	s.app.Post("/nearest-property", limited, s.propertyHandler.NearestProperty)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", healthCheck)

	// Property routes
	api.Post("/nearest-property", limited, s.propertyHandler.NearestProperty)
	api.Get("/properties", s.propertyHandler.ListProperties)

	// Stats
	if s.statsHandler != nil {
		api.Get("/stats", s.statsHandler.GetStatistics)
	}
}

// healthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status: "healthy",
		Time:   time.Now().Unix(),
	})
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			} else if code < fiber.StatusInternalServerError {
				errCode = "INVALID_REQUEST"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
