package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"prompthub/internal/models"
	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
	"prompthub/internal/services"
)

func newTemplateService(templateRepo *MockPromptTemplateRepository, favoriteRepo *MockFavoriteRepository) *services.TemplateService {
	// nil redis client: caching off, same code path as a cache miss.
	return services.NewTemplateService(templateRepo, favoriteRepo, nil)
}

func TestTemplateService_CreateTemplate(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	mockFavoriteRepo := new(MockFavoriteRepository)
	templateService := newTemplateService(mockTemplateRepo, mockFavoriteRepo)

	req := schemas.PromptTemplateCreate{
		Title:    "Blog Outline",
		Content:  "Write an outline about {topic}",
		Keywords: []string{"writing", "blog"},
		IsPublic: true,
	}

	mockTemplateRepo.On("Create", mock.AnythingOfType("*models.PromptTemplate")).Return(nil).Once()

	template, err := templateService.CreateTemplate(7, req)

	assert.NoError(t, err)
	assert.Equal(t, uint(7), template.UserID)
	assert.Equal(t, "Blog Outline", template.Title)
	assert.True(t, template.IsActive)
	assert.True(t, template.IsPublic)
	mockTemplateRepo.AssertExpectations(t)
}

func TestTemplateService_CreateTemplate_MissingContent(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	_, err := templateService.CreateTemplate(7, schemas.PromptTemplateCreate{Title: "No Content"})

	var verrs schemas.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	mockTemplateRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestTemplateService_GetTemplate_PrivateVisibility(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	private := &models.PromptTemplate{ID: 3, UserID: 7, IsPublic: false, IsActive: true}
	mockTemplateRepo.On("GetByID", uint(3)).Return(private, nil)

	// The owner can read their private template.
	got, err := templateService.GetTemplate(3, 7)
	assert.NoError(t, err)
	assert.Equal(t, uint(3), got.ID)

	// Anyone else is refused.
	_, err = templateService.GetTemplate(3, 8)
	assert.ErrorIs(t, err, services.ErrPermissionDenied)
}

func TestTemplateService_UpdateTemplate_PartialFields(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	existing := &models.PromptTemplate{
		ID:       3,
		UserID:   7,
		Title:    "Old Title",
		Content:  "Old content",
		IsPublic: false,
		IsActive: true,
	}
	mockTemplateRepo.On("GetByID", uint(3)).Return(existing, nil).Once()
	mockTemplateRepo.On("Update", mock.AnythingOfType("*models.PromptTemplate")).Return(nil).Once()

	newTitle := "New Title"
	updated, err := templateService.UpdateTemplate(3, 7, schemas.PromptTemplateUpdate{Title: &newTitle})

	assert.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Old content", updated.Content)
	assert.False(t, updated.IsPublic)
	mockTemplateRepo.AssertExpectations(t)
}

func TestTemplateService_UpdateTemplate_NotOwner(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	existing := &models.PromptTemplate{ID: 3, UserID: 7, IsPublic: true, IsActive: true}
	mockTemplateRepo.On("GetByID", uint(3)).Return(existing, nil).Once()

	newTitle := "Hijack"
	_, err := templateService.UpdateTemplate(3, 8, schemas.PromptTemplateUpdate{Title: &newTitle})

	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	mockTemplateRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestTemplateService_RetireTemplate(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	existing := &models.PromptTemplate{ID: 3, UserID: 7, IsPublic: true, IsActive: true}
	mockTemplateRepo.On("GetByID", uint(3)).Return(existing, nil).Once()
	mockTemplateRepo.On("Update", mock.MatchedBy(func(tpl *models.PromptTemplate) bool {
		return !tpl.IsActive
	})).Return(nil).Once()

	assert.NoError(t, templateService.RetireTemplate(3, 7))
	mockTemplateRepo.AssertExpectations(t)
}

func TestTemplateService_SearchTemplates_DefaultsApplied(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	mockTemplateRepo.On("Search", uint(7), mock.MatchedBy(func(filter schemas.PromptTemplateSearch) bool {
		return filter.Limit != nil && *filter.Limit == 20 && filter.Offset != nil && *filter.Offset == 0
	})).Return([]models.PromptTemplate{}, int64(0), nil).Once()

	_, total, err := templateService.SearchTemplates(7, schemas.PromptTemplateSearch{})

	assert.NoError(t, err)
	assert.Equal(t, int64(0), total)
	mockTemplateRepo.AssertExpectations(t)
}

func TestTemplateService_SearchTemplates_RejectsBadLimit(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	limit := 500
	_, _, err := templateService.SearchTemplates(7, schemas.PromptTemplateSearch{Limit: &limit})

	var verrs schemas.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	mockTemplateRepo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestTemplateService_GetPublicTemplates_NoCache(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	templateService := newTemplateService(mockTemplateRepo, new(MockFavoriteRepository))

	stored := []models.PromptTemplate{{ID: 1, Title: "Public", IsPublic: true, IsActive: true}}
	mockTemplateRepo.On("GetPublic").Return(stored, nil).Once()

	templates, err := templateService.GetPublicTemplates()

	assert.NoError(t, err)
	assert.Len(t, templates, 1)
	mockTemplateRepo.AssertExpectations(t)
}

func TestTemplateService_ToggleFavorite_AddsThenRemoves(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	mockFavoriteRepo := new(MockFavoriteRepository)
	templateService := newTemplateService(mockTemplateRepo, mockFavoriteRepo)

	template := &models.PromptTemplate{ID: 3, UserID: 9, IsPublic: true, IsActive: true}
	mockTemplateRepo.On("GetByID", uint(3)).Return(template, nil)

	// No marker yet: the toggle creates one.
	mockFavoriteRepo.On("GetByUserAndTemplate", uint(7), uint(3)).Return(nil, repositories.ErrNotFound).Once()
	mockFavoriteRepo.On("Create", mock.AnythingOfType("*models.UserFavorite")).Return(nil).Once()

	favorited, err := templateService.ToggleFavorite(7, 3)
	assert.NoError(t, err)
	assert.True(t, favorited)

	// Marker present: the toggle removes it.
	existing := &models.UserFavorite{ID: 1, UserID: 7, PromptTemplateID: 3}
	mockFavoriteRepo.On("GetByUserAndTemplate", uint(7), uint(3)).Return(existing, nil).Once()
	mockFavoriteRepo.On("Delete", uint(7), uint(3)).Return(nil).Once()

	favorited, err = templateService.ToggleFavorite(7, 3)
	assert.NoError(t, err)
	assert.False(t, favorited)

	mockFavoriteRepo.AssertExpectations(t)
}

func TestTemplateService_ToggleFavorite_PrivateTemplateOfAnotherUser(t *testing.T) {
	mockTemplateRepo := new(MockPromptTemplateRepository)
	mockFavoriteRepo := new(MockFavoriteRepository)
	templateService := newTemplateService(mockTemplateRepo, mockFavoriteRepo)

	private := &models.PromptTemplate{ID: 3, UserID: 9, IsPublic: false, IsActive: true}
	mockTemplateRepo.On("GetByID", uint(3)).Return(private, nil).Once()

	_, err := templateService.ToggleFavorite(7, 3)

	assert.ErrorIs(t, err, services.ErrPermissionDenied)
	mockFavoriteRepo.AssertNotCalled(t, "Create", mock.Anything)
}
