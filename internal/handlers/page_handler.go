package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/talent-analyzer/internal/models"
)

const LayoutMain = "layouts/main"

// Page renders a template that needs no request data.
func Page(name, title string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render(name, models.PageData{Title: title}, LayoutMain)
	}
}
