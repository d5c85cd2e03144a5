package services

import (
	"fmt"

	"prompthub/internal/models"
	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
)

// UserService handles profile reads and updates plus the dashboard
// aggregate.
type UserService struct {
	userRepo       repositories.UserRepository
	templateRepo   repositories.PromptTemplateRepository
	favoriteRepo   repositories.FavoriteRepository
	generationRepo repositories.GenerationRepository
}

// NewUserService creates a new UserService.
func NewUserService(
	userRepo repositories.UserRepository,
	templateRepo repositories.PromptTemplateRepository,
	favoriteRepo repositories.FavoriteRepository,
	generationRepo repositories.GenerationRepository,
) *UserService {
	return &UserService{
		userRepo:       userRepo,
		templateRepo:   templateRepo,
		favoriteRepo:   favoriteRepo,
		generationRepo: generationRepo,
	}
}

// GetProfile retrieves a user by ID.
func (s *UserService) GetProfile(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateProfile applies a partial profile update. Absent fields stay
// unchanged; present fields overwrite, including explicit empty values.
func (s *UserService) UpdateProfile(id uint, req schemas.UserUpdate) (*models.User, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		if existing, err := s.userRepo.GetByEmail(*req.Email); err == nil && existing != nil && existing.ID != id {
			return nil, fmt.Errorf("email '%s' already registered: %w", *req.Email, repositories.ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.OpenAIAPIKey != nil {
		user.OpenAIAPIKey = req.OpenAIAPIKey
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DashboardStats assembles the read-only dashboard aggregate from store
// counts and recent records.
func (s *UserService) DashboardStats(userID uint) (*schemas.UserDashboardStats, error) {
	totalTemplates, err := s.templateRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	totalGenerations, err := s.generationRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	totalFavorites, err := s.favoriteRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.generationRepo.ListByUser(userID, 10, 0)
	if err != nil {
		return nil, err
	}
	topCategories, err := s.templateRepo.TopCategoriesByUser(userID, 5)
	if err != nil {
		return nil, err
	}
	monthly, err := s.generationRepo.MonthlyUsageByUser(userID, 6)
	if err != nil {
		return nil, err
	}

	return &schemas.UserDashboardStats{
		TotalTemplates:    totalTemplates,
		TotalGenerations:  totalGenerations,
		TotalFavorites:    totalFavorites,
		RecentGenerations: recent,
		TopCategories:     topCategories,
		MonthlyUsage:      monthly,
	}, nil
}
