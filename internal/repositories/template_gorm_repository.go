package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"prompthub/internal/models"
	"prompthub/internal/schemas"
)

// GORMPromptTemplateRepository is a GORM implementation of
// PromptTemplateRepository.
type GORMPromptTemplateRepository struct {
	db *gorm.DB
}

// NewGORMPromptTemplateRepository creates a new instance of
// GORMPromptTemplateRepository.
func NewGORMPromptTemplateRepository(db *gorm.DB) *GORMPromptTemplateRepository {
	return &GORMPromptTemplateRepository{db: db}
}

// Create inserts a new template. A user_id pointing at a missing user, or a
// category_id pointing at a missing category, surfaces as ErrReference.
func (r *GORMPromptTemplateRepository) Create(template *models.PromptTemplate) error {
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create prompt template: %w", translateError(err))
	}
	return nil
}

// GetByID retrieves a single template by its ID.
func (r *GORMPromptTemplateRepository) GetByID(id uint) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	if err := r.db.First(&template, id).Error; err != nil {
		return nil, fmt.Errorf("prompt template with ID %d: %w", id, translateError(err))
	}
	return &template, nil
}

// Update persists every field of an existing template.
func (r *GORMPromptTemplateRepository) Update(template *models.PromptTemplate) error {
	res := r.db.Save(template)
	if res.Error != nil {
		return fmt.Errorf("failed to update prompt template: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("prompt template with ID %d for update: %w", template.ID, ErrNotFound)
	}
	return nil
}

// Search retrieves templates matching the filter plus the total match count.
// Results are scoped to what the caller may see: public templates plus their
// own. The caller is responsible for applying pagination defaults first.
func (r *GORMPromptTemplateRepository) Search(callerID uint, filter schemas.PromptTemplateSearch) ([]models.PromptTemplate, int64, error) {
	db := r.db.Model(&models.PromptTemplate{}).
		Where("is_public = ? OR user_id = ?", true, callerID)

	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + *filter.Query + "%"
		db = db.Where("title LIKE ? OR description LIKE ? OR content LIKE ?", pattern, pattern, pattern)
	}
	if filter.CategoryID != nil {
		db = db.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.UserID != nil {
		db = db.Where("user_id = ?", *filter.UserID)
	}
	if filter.IsPublic != nil {
		db = db.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.IsActive != nil {
		db = db.Where("is_active = ?", *filter.IsActive)
	}
	// Keywords live in a JSON array column; matching the quoted token in the
	// serialized form works on both SQLite and Postgres.
	for _, kw := range filter.Keywords {
		db = db.Where("CAST(keywords AS TEXT) LIKE ?", "%\""+kw+"\"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count prompt templates: %w", translateError(err))
	}

	limit, offset := 20, 0
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if filter.Offset != nil {
		offset = *filter.Offset
	}

	var templates []models.PromptTemplate
	if err := db.Order("created_at desc").Limit(limit).Offset(offset).Find(&templates).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search prompt templates: %w", translateError(err))
	}
	return templates, total, nil
}

// GetPublic retrieves all active public templates, newest first.
func (r *GORMPromptTemplateRepository) GetPublic() ([]models.PromptTemplate, error) {
	var templates []models.PromptTemplate
	err := r.db.
		Where("is_public = ? AND is_active = ?", true, true).
		Order("created_at desc").
		Find(&templates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get public prompt templates: %w", translateError(err))
	}
	return templates, nil
}

// IncrementUsage bumps the usage counter atomically in the store.
func (r *GORMPromptTemplateRepository) IncrementUsage(id uint) error {
	res := r.db.Model(&models.PromptTemplate{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return fmt.Errorf("failed to increment usage count: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("prompt template with ID %d for usage increment: %w", id, ErrNotFound)
	}
	return nil
}

// CountByUser returns how many templates a user owns.
func (r *GORMPromptTemplateRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PromptTemplate{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count templates for user %d: %w", userID, translateError(err))
	}
	return count, nil
}

// TopCategoriesByUser returns the categories holding the most of a user's
// templates, for the dashboard aggregate.
func (r *GORMPromptTemplateRepository) TopCategoriesByUser(userID uint, limit int) ([]schemas.CategoryUsage, error) {
	var rows []schemas.CategoryUsage
	err := r.db.Model(&models.PromptTemplate{}).
		Select("categories.id AS category_id, categories.name AS name, COUNT(*) AS count").
		Joins("JOIN categories ON categories.id = prompt_templates.category_id").
		Where("prompt_templates.user_id = ?", userID).
		Group("categories.id, categories.name").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get top categories for user %d: %w", userID, translateError(err))
	}
	return rows, nil
}
