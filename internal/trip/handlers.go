package trip

import (
	"github.com/sai-sundar/creator-travel-planner/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionGuard fiber.Handler) {
	r.Get("/", sessionGuard, func(c *fiber.Ctx) error {
		trips, err := svc.ListTrips(c.Context(), auth.CallerID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch trips")
		}
		return c.JSON(fiber.Map{"trips": trips})
	})

	r.Post("/", sessionGuard, func(c *fiber.Ctx) error {
		var req CreateTripRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Title == "" || req.StartDate.IsZero() || req.EndDate.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "title, start_date and end_date required")
		}
		trip, err := svc.CreateTrip(c.Context(), auth.CallerID(c), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create trip")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"trip": trip})
	})

	r.Get("/:id", sessionGuard, func(c *fiber.Ctx) error {
		detail, err := svc.GetTrip(c.Context(), auth.CallerID(c), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "trip not found")
		}
		return c.JSON(fiber.Map{"trip": detail})
	})

	r.Delete("/:id", sessionGuard, func(c *fiber.Ctx) error {
		if err := svc.DeleteTrip(c.Context(), auth.CallerID(c), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete trip")
		}
		return c.JSON(fiber.Map{"success": true})
	})
}
