package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

// TemplateHandler handles HTTP requests for prompt templates and favorite
// toggling.
type TemplateHandler struct {
	service *services.TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// RegisterRoutes registers the template routes with the Fiber app.
func (h *TemplateHandler) RegisterRoutes(router fiber.Router) {
	templateRoutes := router.Group("/templates")
	templateRoutes.Get("/public", h.HandleGetPublicTemplates)
	templateRoutes.Post("/search", h.HandleSearchTemplates)
	templateRoutes.Post("/", h.HandleCreateTemplate)
	templateRoutes.Get("/:id", h.HandleGetTemplateByID)
	templateRoutes.Patch("/:id", h.HandleUpdateTemplate)
	// Templates are retired, never hard-deleted.
	templateRoutes.Delete("/:id", h.HandleRetireTemplate)
	templateRoutes.Post("/:id/favorite", h.HandleToggleFavorite)
}

// HandleCreateTemplate creates a new template owned by the caller.
func (h *TemplateHandler) HandleCreateTemplate(c *fiber.Ctx) error {
	var req schemas.PromptTemplateCreate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing template create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	template, err := h.service.CreateTemplate(currentUserID(c), req)
	if err != nil {
		log.Printf("Error creating template: %v", err)
		return errorResponse(c, err, "Could not create template")
	}
	return c.Status(fiber.StatusCreated).JSON(template)
}

// HandleGetTemplateByID retrieves a single template by its ID.
func (h *TemplateHandler) HandleGetTemplateByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template ID",
		})
	}

	template, err := h.service.GetTemplate(uint(id), currentUserID(c))
	if err != nil {
		log.Printf("Error getting template %d: %v", id, err)
		return errorResponse(c, err, "Could not retrieve template")
	}
	return c.JSON(template)
}

// HandleUpdateTemplate applies a partial update to a template.
func (h *TemplateHandler) HandleUpdateTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template ID",
		})
	}

	var req schemas.PromptTemplateUpdate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing template update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	template, err := h.service.UpdateTemplate(uint(id), currentUserID(c), req)
	if err != nil {
		log.Printf("Error updating template %d: %v", id, err)
		return errorResponse(c, err, "Could not update template")
	}
	return c.JSON(template)
}

// HandleRetireTemplate logically retires a template.
func (h *TemplateHandler) HandleRetireTemplate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template ID",
		})
	}

	if err := h.service.RetireTemplate(uint(id), currentUserID(c)); err != nil {
		log.Printf("Error retiring template %d: %v", id, err)
		return errorResponse(c, err, "Could not retire template")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearchTemplates searches templates with filters and pagination.
func (h *TemplateHandler) HandleSearchTemplates(c *fiber.Ctx) error {
	var filter schemas.PromptTemplateSearch
	if err := c.BodyParser(&filter); err != nil {
		log.Printf("Error parsing template search body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	templates, total, err := h.service.SearchTemplates(currentUserID(c), filter)
	if err != nil {
		log.Printf("Error searching templates: %v", err)
		return errorResponse(c, err, "Could not search templates")
	}
	return c.JSON(fiber.Map{
		"templates": templates,
		"total":     total,
	})
}

// HandleGetPublicTemplates lists all active public templates.
func (h *TemplateHandler) HandleGetPublicTemplates(c *fiber.Ctx) error {
	templates, err := h.service.GetPublicTemplates()
	if err != nil {
		log.Printf("Error getting public templates: %v", err)
		return errorResponse(c, err, "Could not retrieve public templates")
	}
	return c.JSON(templates)
}

// HandleToggleFavorite flips the caller's favorite marker on a template.
func (h *TemplateHandler) HandleToggleFavorite(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template ID",
		})
	}

	favorited, err := h.service.ToggleFavorite(currentUserID(c), uint(id))
	if err != nil {
		log.Printf("Error toggling favorite on template %d: %v", id, err)
		return errorResponse(c, err, "Could not toggle favorite")
	}
	return c.JSON(fiber.Map{
		"favorited": favorited,
	})
}
