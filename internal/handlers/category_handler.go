package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Patch("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleGetCategories retrieves all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetAllCategories()
	if err != nil {
		log.Printf("Error getting all categories: %v", err)
		return errorResponse(c, err, "Could not retrieve categories")
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID",
		})
	}

	category, err := h.service.GetCategoryByID(uint(id))
	if err != nil {
		log.Printf("Error getting category by ID %d: %v", id, err)
		return errorResponse(c, err, "Could not retrieve category")
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req schemas.CategoryCreate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.CreateCategory(req)
	if err != nil {
		log.Printf("Error creating category: %v", err)
		return errorResponse(c, err, "Could not create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial update to a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID",
		})
	}

	var req schemas.CategoryUpdate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing category update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	category, err := h.service.UpdateCategory(uint(id), req)
	if err != nil {
		log.Printf("Error updating category %d: %v", id, err)
		return errorResponse(c, err, "Could not update category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID",
		})
	}

	if err := h.service.DeleteCategory(uint(id)); err != nil {
		log.Printf("Error deleting category %d: %v", id, err)
		return errorResponse(c, err, "Could not delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
