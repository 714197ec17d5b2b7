package admin

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires the reference-data endpoints. Any authenticated
// session may call them; there is no separate admin role.
func RegisterRoutes(r fiber.Router, svc *Service, sessionGuard fiber.Handler) {
	r.Get("/locations", sessionGuard, func(c *fiber.Ctx) error {
		locations, err := svc.ListLocations(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch locations")
		}
		return c.JSON(fiber.Map{"locations": locations})
	})

	r.Post("/locations", sessionGuard, func(c *fiber.Ctx) error {
		var req CreateLocationRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Name == "" || req.Country == "" || req.Category == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name, country and category required")
		}
		location, err := svc.CreateLocation(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create location")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"location": location})
	})

	r.Delete("/locations/:id", sessionGuard, func(c *fiber.Ctx) error {
		if err := svc.DeleteLocation(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete location")
		}
		return c.JSON(fiber.Map{"success": true})
	})

	r.Get("/tags", sessionGuard, func(c *fiber.Ctx) error {
		tags, err := svc.ListTags(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch tags")
		}
		return c.JSON(fiber.Map{"tags": tags})
	})

	r.Post("/tags", sessionGuard, func(c *fiber.Ctx) error {
		var req CreateTagRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.TagName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "tag_name required")
		}
		tag, err := svc.CreateTag(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to create tag")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"tag": tag})
	})

	r.Delete("/tags/:id", sessionGuard, func(c *fiber.Ctx) error {
		if err := svc.DeleteTag(c.Context(), c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete tag")
		}
		return c.JSON(fiber.Map{"success": true})
	})
}
