package repositories

import "prompthub/internal/models"

// FavoriteRepository defines the interface for favorite-marker data access.
type FavoriteRepository interface {
	Create(favorite *models.UserFavorite) error
	Delete(userID, templateID uint) error
	GetByUserAndTemplate(userID, templateID uint) (*models.UserFavorite, error)
	ListByUser(userID uint) ([]models.UserFavorite, error)
	CountByUser(userID uint) (int64, error)
}
