package dashboard

import (
	"github.com/sai-sundar/creator-travel-planner/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionGuard fiber.Handler) {
	r.Get("/", sessionGuard, func(c *fiber.Ctx) error {
		summary, err := svc.Summary(c.Context(), auth.CallerID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard data")
		}
		return c.JSON(summary)
	})
}
