package repositories

import (
	"prompthub/internal/models"
	"prompthub/internal/schemas"
)

// PromptTemplateRepository defines the interface for template data access.
type PromptTemplateRepository interface {
	Create(template *models.PromptTemplate) error
	GetByID(id uint) (*models.PromptTemplate, error)
	Update(template *models.PromptTemplate) error
	Search(callerID uint, filter schemas.PromptTemplateSearch) ([]models.PromptTemplate, int64, error)
	GetPublic() ([]models.PromptTemplate, error)
	IncrementUsage(id uint) error
	CountByUser(userID uint) (int64, error)
	TopCategoriesByUser(userID uint, limit int) ([]schemas.CategoryUsage, error)
}
