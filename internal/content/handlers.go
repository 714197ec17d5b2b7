package content

import (
	"errors"

	"github.com/sai-sundar/creator-travel-planner/internal/auth"
	"github.com/sai-sundar/creator-travel-planner/internal/caption"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, sessionGuard fiber.Handler) {
	r.Get("/", sessionGuard, func(c *fiber.Ctx) error {
		entries, err := svc.ListEntries(c.Context(), auth.CallerID(c))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch content")
		}
		return c.JSON(fiber.Map{"content": entries})
	})

	r.Post("/", sessionGuard, func(c *fiber.Ctx) error {
		var req CreateEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.ScheduledDate.IsZero() {
			return fiber.NewError(fiber.StatusBadRequest, "scheduled_date required")
		}
		entry, err := svc.CreateEntry(c.Context(), auth.CallerID(c), req)
		if err != nil {
			if errors.Is(err, ErrNoTrips) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create content")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"content": entry})
	})

	r.Post("/caption", sessionGuard, func(c *fiber.Ctx) error {
		var req CaptionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		text, err := caption.Generate(req.Tone, req.LocationSuggestion)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"caption": text, "tone": req.Tone})
	})
}
