package services_test

import (
	"github.com/stretchr/testify/mock"

	"prompthub/internal/models"
	"prompthub/internal/schemas"
)

// MockUserRepository is a mock implementation of repositories.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

// MockPromptTemplateRepository is a mock implementation of
// repositories.PromptTemplateRepository.
type MockPromptTemplateRepository struct {
	mock.Mock
}

func (m *MockPromptTemplateRepository) Create(template *models.PromptTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockPromptTemplateRepository) GetByID(id uint) (*models.PromptTemplate, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromptTemplate), args.Error(1)
}

func (m *MockPromptTemplateRepository) Update(template *models.PromptTemplate) error {
	args := m.Called(template)
	return args.Error(0)
}

func (m *MockPromptTemplateRepository) Search(callerID uint, filter schemas.PromptTemplateSearch) ([]models.PromptTemplate, int64, error) {
	args := m.Called(callerID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.PromptTemplate), args.Get(1).(int64), args.Error(2)
}

func (m *MockPromptTemplateRepository) GetPublic() ([]models.PromptTemplate, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PromptTemplate), args.Error(1)
}

func (m *MockPromptTemplateRepository) IncrementUsage(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPromptTemplateRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromptTemplateRepository) TopCategoriesByUser(userID uint, limit int) ([]schemas.CategoryUsage, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.CategoryUsage), args.Error(1)
}

// MockFavoriteRepository is a mock implementation of
// repositories.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(favorite *models.UserFavorite) error {
	args := m.Called(favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Delete(userID, templateID uint) error {
	args := m.Called(userID, templateID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByUserAndTemplate(userID, templateID uint) (*models.UserFavorite, error) {
	args := m.Called(userID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserFavorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(userID uint) ([]models.UserFavorite, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserFavorite), args.Error(1)
}

func (m *MockFavoriteRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockGenerationRepository is a mock implementation of
// repositories.GenerationRepository.
type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Create(generation *models.PromptGeneration) error {
	args := m.Called(generation)
	return args.Error(0)
}

func (m *MockGenerationRepository) GetByID(id uint) (*models.PromptGeneration, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PromptGeneration), args.Error(1)
}

func (m *MockGenerationRepository) Update(generation *models.PromptGeneration) error {
	args := m.Called(generation)
	return args.Error(0)
}

func (m *MockGenerationRepository) ListByUser(userID uint, limit, offset int) ([]models.PromptGeneration, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PromptGeneration), args.Error(1)
}

func (m *MockGenerationRepository) CountByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGenerationRepository) MonthlyUsageByUser(userID uint, months int) ([]schemas.MonthlyUsage, error) {
	args := m.Called(userID, months)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schemas.MonthlyUsage), args.Error(1)
}
