package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"prompthub/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories ordered by name.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", translateError(err))
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("category with ID %d: %w", id, translateError(err))
	}
	return &category, nil
}

// Create inserts a new category. A duplicate name surfaces as ErrConflict.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translateError(err))
	}
	return nil
}

// Update persists every field of an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d for update: %w", category.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a category by its ID. Templates keep referencing it weakly,
// so deletion fails with ErrReference while templates still point at it.
func (r *GORMCategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %d for deletion: %w", id, ErrNotFound)
	}
	return nil
}
