package api

import (
	"time"

	"github.com/chaeya/glances/internal/cpustats"
	"github.com/chaeya/glances/internal/platform"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Server represents the API server. All endpoints share one StatsCache, so
// the dashboard and detailed views never trigger more than one kernel
// sample per cache interval between them.
type Server struct {
	app   *fiber.App
	stats *cpustats.StatsCache
}

// NewServer creates a new API server over the given stats cache
func NewServer(stats *cpustats.StatsCache) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "glances",
		AppName:      "glances CPU stats v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "*",
	}))

	server := &Server{
		app:   app,
		stats: stats,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Detailed CPU view
	api.Get("/cpu", s.getCPU)
	api.Get("/cpu/percpu", s.getPerCPU)
	api.Get("/cpu/info", s.getCPUInfo)

	// Dashboard view
	api.Get("/quicklook", s.getQuicklook)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"timestamp": time.Now().Unix(),
	})
}
