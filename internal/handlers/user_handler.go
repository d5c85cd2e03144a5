package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

// UserHandler handles HTTP requests for the authenticated user's profile,
// dashboard and favorites.
type UserHandler struct {
	userService     *services.UserService
	templateService *services.TemplateService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, templateService *services.TemplateService) *UserHandler {
	return &UserHandler{
		userService:     userService,
		templateService: templateService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users/me")
	userRoutes.Get("/", h.HandleGetProfile)
	userRoutes.Patch("/", h.HandleUpdateProfile)
	userRoutes.Get("/dashboard", h.HandleGetDashboard)
	userRoutes.Get("/favorites", h.HandleGetFavorites)
}

// HandleGetProfile returns the authenticated user's profile.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(currentUserID(c))
	if err != nil {
		log.Printf("Error getting profile: %v", err)
		return errorResponse(c, err, "Could not retrieve profile")
	}
	return c.JSON(user)
}

// HandleUpdateProfile applies a partial profile update.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var req schemas.UserUpdate
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing profile update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.userService.UpdateProfile(currentUserID(c), req)
	if err != nil {
		log.Printf("Error updating profile: %v", err)
		return errorResponse(c, err, "Could not update profile")
	}
	return c.JSON(user)
}

// HandleGetDashboard returns the dashboard aggregate for the authenticated
// user.
func (h *UserHandler) HandleGetDashboard(c *fiber.Ctx) error {
	stats, err := h.userService.DashboardStats(currentUserID(c))
	if err != nil {
		log.Printf("Error assembling dashboard stats: %v", err)
		return errorResponse(c, err, "Could not assemble dashboard stats")
	}
	return c.JSON(stats)
}

// HandleGetFavorites lists the authenticated user's favorite markers.
func (h *UserHandler) HandleGetFavorites(c *fiber.Ctx) error {
	favorites, err := h.templateService.ListFavorites(currentUserID(c))
	if err != nil {
		log.Printf("Error listing favorites: %v", err)
		return errorResponse(c, err, "Could not retrieve favorites")
	}
	return c.JSON(favorites)
}
