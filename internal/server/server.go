package server

import (
	"errors"

	"github.com/sai-sundar/creator-travel-planner/internal/admin"
	"github.com/sai-sundar/creator-travel-planner/internal/auth"
	"github.com/sai-sundar/creator-travel-planner/internal/config"
	"github.com/sai-sundar/creator-travel-planner/internal/content"
	"github.com/sai-sundar/creator-travel-planner/internal/dashboard"
	"github.com/sai-sundar/creator-travel-planner/internal/trip"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	App   *fiber.App
	Cfg   config.Config
	DB    *pgxpool.Pool
	Redis *redis.Client
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())

	s := &Server{
		App:   app,
		Cfg:   cfg,
		DB:    db,
		Redis: redisClient,
	}

	registerRoutes(s)
	return s
}

// errorHandler renders every handler error as the {"error": "..."} envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	sessionGuard := auth.SessionGuard(s.Cfg.JWTSecret)

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.DB))

	api := s.App.Group("/api")
	trip.RegisterRoutes(api.Group("/trips"), trip.NewService(s.DB), sessionGuard)
	content.RegisterRoutes(api.Group("/content-calendar"), content.NewService(s.DB), sessionGuard)
	dashboard.RegisterRoutes(api.Group("/dashboard"), dashboard.NewService(s.DB), sessionGuard)
	admin.RegisterRoutes(api.Group("/admin"), admin.NewService(s.DB, s.Redis), sessionGuard)
}
