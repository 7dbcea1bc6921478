package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the public decision categories
type ContentHandler struct{}

// GetCategories handles GET /api/categories
// @Summary Decision categories
// @Tags Content
// @Produce json
// @Success 200 {array} models.Category
// @Router /categories [get]
func (h *ContentHandler) GetCategories(c *fiber.Ctx) error {
	return c.JSON(session(c).Storage.Categories(c.UserContext()))
}
