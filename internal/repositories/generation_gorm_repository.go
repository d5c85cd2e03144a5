package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"prompthub/internal/models"
	"prompthub/internal/schemas"
)

// GORMGenerationRepository is a GORM implementation of GenerationRepository.
type GORMGenerationRepository struct {
	db *gorm.DB
}

// NewGORMGenerationRepository creates a new instance of
// GORMGenerationRepository.
func NewGORMGenerationRepository(db *gorm.DB) *GORMGenerationRepository {
	return &GORMGenerationRepository{db: db}
}

// Create inserts a new generation record. Missing user or template rows
// surface as ErrReference.
func (r *GORMGenerationRepository) Create(generation *models.PromptGeneration) error {
	if err := r.db.Create(generation).Error; err != nil {
		return fmt.Errorf("failed to create generation: %w", translateError(err))
	}
	return nil
}

// GetByID retrieves a single generation record by its ID.
func (r *GORMGenerationRepository) GetByID(id uint) (*models.PromptGeneration, error) {
	var generation models.PromptGeneration
	if err := r.db.First(&generation, id).Error; err != nil {
		return nil, fmt.Errorf("generation with ID %d: %w", id, translateError(err))
	}
	return &generation, nil
}

// Update persists every field of an existing generation record.
func (r *GORMGenerationRepository) Update(generation *models.PromptGeneration) error {
	res := r.db.Save(generation)
	if res.Error != nil {
		return fmt.Errorf("failed to update generation: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("generation with ID %d for update: %w", generation.ID, ErrNotFound)
	}
	return nil
}

// ListByUser retrieves a user's generation records, newest first.
func (r *GORMGenerationRepository) ListByUser(userID uint, limit, offset int) ([]models.PromptGeneration, error) {
	var generations []models.PromptGeneration
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&generations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list generations for user %d: %w", userID, translateError(err))
	}
	return generations, nil
}

// CountByUser returns how many generations a user has recorded.
func (r *GORMGenerationRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.PromptGeneration{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count generations for user %d: %w", userID, translateError(err))
	}
	return count, nil
}

// MonthlyUsageByUser returns per-month generation counts for the dashboard,
// most recent month first.
func (r *GORMGenerationRepository) MonthlyUsageByUser(userID uint, months int) ([]schemas.MonthlyUsage, error) {
	// Month bucketing has no portable SQL spelling.
	monthExpr := "to_char(created_at, 'YYYY-MM')"
	if r.db.Dialector.Name() == "sqlite" {
		monthExpr = "strftime('%Y-%m', created_at)"
	}

	var rows []schemas.MonthlyUsage
	err := r.db.Model(&models.PromptGeneration{}).
		Select(monthExpr+" AS month, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("month").
		Order("month DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly usage for user %d: %w", userID, translateError(err))
	}
	return rows, nil
}
