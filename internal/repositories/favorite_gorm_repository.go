package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"prompthub/internal/models"
)

// GORMFavoriteRepository is a GORM implementation of FavoriteRepository.
type GORMFavoriteRepository struct {
	db *gorm.DB
}

// NewGORMFavoriteRepository creates a new instance of GORMFavoriteRepository.
func NewGORMFavoriteRepository(db *gorm.DB) *GORMFavoriteRepository {
	return &GORMFavoriteRepository{db: db}
}

// Create inserts a favorite marker. Favoriting the same template twice
// surfaces as ErrConflict via the composite unique index.
func (r *GORMFavoriteRepository) Create(favorite *models.UserFavorite) error {
	if err := r.db.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", translateError(err))
	}
	return nil
}

// Delete removes the favorite marker for a (user, template) pair.
func (r *GORMFavoriteRepository) Delete(userID, templateID uint) error {
	res := r.db.
		Where("user_id = ? AND prompt_template_id = ?", userID, templateID).
		Delete(&models.UserFavorite{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", translateError(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("favorite for user %d and template %d: %w", userID, templateID, ErrNotFound)
	}
	return nil
}

// GetByUserAndTemplate retrieves the favorite marker for a pair, if any.
func (r *GORMFavoriteRepository) GetByUserAndTemplate(userID, templateID uint) (*models.UserFavorite, error) {
	var favorite models.UserFavorite
	err := r.db.
		First(&favorite, "user_id = ? AND prompt_template_id = ?", userID, templateID).Error
	if err != nil {
		return nil, fmt.Errorf("favorite for user %d and template %d: %w", userID, templateID, translateError(err))
	}
	return &favorite, nil
}

// ListByUser retrieves a user's favorite markers, newest first.
func (r *GORMFavoriteRepository) ListByUser(userID uint) ([]models.UserFavorite, error) {
	var favorites []models.UserFavorite
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites for user %d: %w", userID, translateError(err))
	}
	return favorites, nil
}

// CountByUser returns how many templates a user has favorited.
func (r *GORMFavoriteRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.UserFavorite{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites for user %d: %w", userID, translateError(err))
	}
	return count, nil
}
