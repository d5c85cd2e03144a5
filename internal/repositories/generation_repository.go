package repositories

import (
	"prompthub/internal/models"
	"prompthub/internal/schemas"
)

// GenerationRepository defines the interface for generation-record data
// access. Records are append-mostly: created once in pending state and
// mutated later with the external API's response fields.
type GenerationRepository interface {
	Create(generation *models.PromptGeneration) error
	GetByID(id uint) (*models.PromptGeneration, error)
	Update(generation *models.PromptGeneration) error
	ListByUser(userID uint, limit, offset int) ([]models.PromptGeneration, error)
	CountByUser(userID uint) (int64, error)
	MonthlyUsageByUser(userID uint, months int) ([]schemas.MonthlyUsage, error)
}
