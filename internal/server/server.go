// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"log"
	"time"

	"caseboard/internal/config"
	"caseboard/internal/database"
	"caseboard/internal/middleware"
	"caseboard/internal/models"
	"caseboard/internal/repository"
	"caseboard/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	caseRepo       repository.CaseRepository
	commentRepo    repository.CommentRepository
	caseService    *service.CaseService
	commentService *service.CommentService
	uploadService  *service.UploadService
}

// NewServer creates a new server instance, opening the database itself.
// Seeding is intentionally not performed here; it belongs to the runtime
// bootstrap (cmd) or test setup.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	caseRepo := repository.NewCaseRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	prom := fiberprometheus.New("caseboard-api")

	server := &Server{
		config:         cfg,
		db:             db,
		promMiddleware: prom,
		caseRepo:       caseRepo,
		commentRepo:    commentRepo,
	}
	server.caseService = service.NewCaseService(caseRepo)
	server.commentService = service.NewCommentService(commentRepo, server.caseService)
	server.uploadService = service.NewUploadService(cfg.UploadDir)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry tracing (no-op tracer unless enabled in config)
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	api.Get("/health", s.HealthCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Case routes; specific /:id/:resource routes BEFORE generic /:id routes
	cases := api.Group("/cases")
	cases.Get("/", s.ListCases)
	cases.Post("/", s.CreateCase)
	cases.Post("/:id/comments", s.AddComment)
	cases.Post("/:id/like", s.LikeCase)
	cases.Post("/:id/view", s.ViewCase)
	cases.Get("/:id", s.GetCase)
	cases.Patch("/:id", s.UpdateCase)
	cases.Delete("/:id", s.DeleteCase)

	// Upload routes
	api.Post("/upload", s.UploadFile)
	app.Static("/uploads", s.config.UploadDir)

	// Front-end assets at the root path
	app.Static("/", s.config.StaticDir)
}

// HealthCheck handles liveness probe requests; it never touches state.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// ReadinessCheck handles readiness probe requests by pinging the database.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now().UTC(),
	})
}

// App builds the Fiber application with middleware and routes configured.
func (s *Server) App() *fiber.App {
	if s.app != nil {
		return s.app
	}

	app := fiber.New(fiber.Config{
		AppName:   "Caseboard API",
		BodyLimit: 25 * 1024 * 1024, // uploads up to 25MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				return models.RespondWithError(c, fiberErr.Code, err)
			}
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	s.app = app
	return app
}

// Start starts the server
func (s *Server) Start() error {
	app := s.App()
	log.Printf("Server starting on %s...", s.config.Addr())
	return app.Listen(s.config.Addr())
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
