package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"prompthub/internal/models"
	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
)

const (
	// PublicTemplatesCacheKey caches the full public-template list.
	PublicTemplatesCacheKey = "templates:public"
	// TemplatesCacheDuration bounds staleness of the public list.
	TemplatesCacheDuration = 1 * time.Hour
)

// ErrPermissionDenied means the caller does not own the private resource it
// tried to read or mutate.
var ErrPermissionDenied = errors.New("permission denied")

// TemplateService handles business logic for prompt templates and favorite
// markers. The redis client is optional; a nil client disables caching.
type TemplateService struct {
	templateRepo repositories.PromptTemplateRepository
	favoriteRepo repositories.FavoriteRepository
	cache        *redis.Client
}

// NewTemplateService creates a new TemplateService.
func NewTemplateService(
	templateRepo repositories.PromptTemplateRepository,
	favoriteRepo repositories.FavoriteRepository,
	cache *redis.Client,
) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		favoriteRepo: favoriteRepo,
		cache:        cache,
	}
}

// CreateTemplate validates the payload and persists a new template owned by
// the given user.
func (s *TemplateService) CreateTemplate(userID uint, req schemas.PromptTemplateCreate) (*models.PromptTemplate, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	template := &models.PromptTemplate{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Keywords:    req.Keywords,
		Parameters:  req.Parameters,
		IsPublic:    req.IsPublic,
		IsActive:    true,
		UserID:      userID,
		CategoryID:  req.CategoryID,
	}
	if err := s.templateRepo.Create(template); err != nil {
		return nil, err
	}

	if template.IsPublic {
		s.invalidatePublicCache()
	}
	return template, nil
}

// GetTemplate retrieves a template. Private templates are visible only to
// their owner.
func (s *TemplateService) GetTemplate(id, userID uint) (*models.PromptTemplate, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !template.IsPublic && template.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return template, nil
}

// UpdateTemplate applies a partial update. Only the owner may update a
// template.
func (s *TemplateService) UpdateTemplate(id, userID uint, req schemas.PromptTemplateUpdate) (*models.PromptTemplate, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template.UserID != userID {
		return nil, ErrPermissionDenied
	}

	wasPublic := template.IsPublic

	if req.Title != nil {
		template.Title = *req.Title
	}
	if req.Description != nil {
		template.Description = req.Description
	}
	if req.Content != nil {
		template.Content = *req.Content
	}
	if req.Keywords != nil {
		template.Keywords = *req.Keywords
	}
	if req.Parameters != nil {
		template.Parameters = *req.Parameters
	}
	if req.IsPublic != nil {
		template.IsPublic = *req.IsPublic
	}
	if req.IsActive != nil {
		template.IsActive = *req.IsActive
	}
	if req.CategoryID != nil {
		template.CategoryID = req.CategoryID
	}

	if err := s.templateRepo.Update(template); err != nil {
		return nil, err
	}

	if wasPublic || template.IsPublic {
		s.invalidatePublicCache()
	}
	return template, nil
}

// RetireTemplate logically retires a template by clearing is_active. There
// is no hard delete for templates.
func (s *TemplateService) RetireTemplate(id, userID uint) error {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return err
	}
	if template.UserID != userID {
		return ErrPermissionDenied
	}

	template.IsActive = false
	if err := s.templateRepo.Update(template); err != nil {
		return err
	}

	if template.IsPublic {
		s.invalidatePublicCache()
	}
	return nil
}

// SearchTemplates validates the filter, applies pagination defaults and
// queries the store. Results are limited to public templates and the
// caller's own, matching the visibility rule of GetTemplate.
func (s *TemplateService) SearchTemplates(callerID uint, filter schemas.PromptTemplateSearch) ([]models.PromptTemplate, int64, error) {
	filter.ApplyDefaults()
	if err := schemas.Validate(filter); err != nil {
		return nil, 0, err
	}
	return s.templateRepo.Search(callerID, filter)
}

// GetPublicTemplates retrieves all active public templates, serving from the
// redis cache when possible.
func (s *TemplateService) GetPublicTemplates() ([]models.PromptTemplate, error) {
	if s.cache != nil {
		val, err := s.cache.Get(context.Background(), PublicTemplatesCacheKey).Result()
		if err == nil {
			var templates []models.PromptTemplate
			if err := json.Unmarshal([]byte(val), &templates); err == nil {
				return templates, nil
			}
		}
	}

	templates, err := s.templateRepo.GetPublic()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(templates); err == nil {
			s.cache.Set(context.Background(), PublicTemplatesCacheKey, data, TemplatesCacheDuration)
		}
	}
	return templates, nil
}

// ToggleFavorite flips the favorite marker for a (user, template) pair and
// reports whether the template is now favorited.
func (s *TemplateService) ToggleFavorite(userID, templateID uint) (bool, error) {
	// The template must exist and be visible to the user.
	if _, err := s.GetTemplate(templateID, userID); err != nil {
		return false, err
	}

	_, err := s.favoriteRepo.GetByUserAndTemplate(userID, templateID)
	switch {
	case err == nil:
		if err := s.favoriteRepo.Delete(userID, templateID); err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, repositories.ErrNotFound):
		favorite := &models.UserFavorite{
			UserID:           userID,
			PromptTemplateID: templateID,
		}
		if err := s.favoriteRepo.Create(favorite); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
}

// ListFavorites retrieves a user's favorite markers.
func (s *TemplateService) ListFavorites(userID uint) ([]models.UserFavorite, error) {
	return s.favoriteRepo.ListByUser(userID)
}

func (s *TemplateService) invalidatePublicCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), PublicTemplatesCacheKey)
	}
}
