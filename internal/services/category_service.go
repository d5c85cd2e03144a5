package services

import (
	"prompthub/internal/models"
	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory validates the payload and persists a new category.
func (s *CategoryService) CreateCategory(req schemas.CategoryCreate) (*models.Category, error) {
	req.ApplyDefaults()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory applies a partial update to an existing category.
func (s *CategoryService) UpdateCategory(id uint, req schemas.CategoryUpdate) (*models.Category, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category by its ID.
func (s *CategoryService) DeleteCategory(id uint) error {
	return s.repo.Delete(id)
}
