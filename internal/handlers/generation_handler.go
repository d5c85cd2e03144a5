package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

// GenerationHandler handles HTTP requests for generation records.
type GenerationHandler struct {
	service *services.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(service *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{service: service}
}

// RegisterRoutes registers the generation routes with the Fiber app.
func (h *GenerationHandler) RegisterRoutes(router fiber.Router) {
	generationRoutes := router.Group("/generations")
	generationRoutes.Get("/", h.HandleListGenerations)
	generationRoutes.Post("/", h.HandleCreateGeneration)
	generationRoutes.Get("/:id", h.HandleGetGenerationByID)
	// The external-call collaborator writes completion fields back here.
	generationRoutes.Patch("/:id", h.HandleUpdateGeneration)
}

// HandleCreateGeneration records a new pending generation.
func (h *GenerationHandler) HandleCreateGeneration(c *fiber.Ctx) error {
	var req schemas.PromptGenerationCreate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing generation create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	generation, err := h.service.CreateGeneration(currentUserID(c), req)
	if err != nil {
		log.Printf("Error creating generation: %v", err)
		return errorResponse(c, err, "Could not create generation")
	}
	return c.Status(fiber.StatusCreated).JSON(generation)
}

// HandleListGenerations lists the caller's generation records.
func (h *GenerationHandler) HandleListGenerations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	generations, err := h.service.ListGenerations(currentUserID(c), limit, offset)
	if err != nil {
		log.Printf("Error listing generations: %v", err)
		return errorResponse(c, err, "Could not retrieve generations")
	}
	return c.JSON(generations)
}

// HandleGetGenerationByID retrieves a single generation record.
func (h *GenerationHandler) HandleGetGenerationByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid generation ID",
		})
	}

	generation, err := h.service.GetGeneration(uint(id), currentUserID(c))
	if err != nil {
		log.Printf("Error getting generation %d: %v", id, err)
		return errorResponse(c, err, "Could not retrieve generation")
	}
	return c.JSON(generation)
}

// HandleUpdateGeneration applies the response fields written back after the
// external call finishes.
func (h *GenerationHandler) HandleUpdateGeneration(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid generation ID",
		})
	}

	var req schemas.PromptGenerationUpdate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing generation update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	generation, err := h.service.UpdateGeneration(uint(id), currentUserID(c), req)
	if err != nil {
		log.Printf("Error updating generation %d: %v", id, err)
		return errorResponse(c, err, "Could not update generation")
	}
	return c.JSON(generation)
}
