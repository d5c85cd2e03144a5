// Package schemas defines the transient request/response shapes used at the
// system boundary. Each shape is a strict subset or reshaping of a persisted
// entity; update shapes use pointer fields so that absence means "leave
// unchanged" and presence (including an explicit zero value) means
// "overwrite".
package schemas

import (
	"time"

	"github.com/shopspring/decimal"

	"prompthub/internal/models"
)

// UserCreate is the registration payload. The password travels in clear text
// only inside this shape; the auth collaborator hashes it before persistence.
type UserCreate struct {
	Username string `json:"username" validate:"required,max=50,username_chars"`
	Email    string `json:"email" validate:"required,max=255,email_format"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	FullName string `json:"full_name" validate:"required,max=200"`
}

// UserLogin is the credential-check payload.
type UserLogin struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

// UserUpdate is the partial profile update payload.
type UserUpdate struct {
	Email        *string `json:"email" validate:"omitempty,max=255,email_format"`
	FullName     *string `json:"full_name" validate:"omitempty,max=200"`
	OpenAIAPIKey *string `json:"openai_api_key" validate:"omitempty,max=255"`
}

// CategoryCreate is the category creation payload.
type CategoryCreate struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       string  `json:"color" validate:"omitempty,len=7,hexcolor"`
}

// ApplyDefaults fills the default color when none was supplied.
func (c *CategoryCreate) ApplyDefaults() {
	if c.Color == "" {
		c.Color = models.DefaultCategoryColor
	}
}

// CategoryUpdate is the partial category update payload.
type CategoryUpdate struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,len=7,hexcolor"`
}

// PromptTemplateCreate is the template creation payload.
type PromptTemplateCreate struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Content     string           `json:"content" validate:"required,max=10000"`
	Keywords    []string         `json:"keywords"`
	Parameters  []map[string]any `json:"parameters"`
	IsPublic    bool             `json:"is_public"`
	CategoryID  *uint            `json:"category_id"`
}

// PromptTemplateUpdate is the partial template update payload.
type PromptTemplateUpdate struct {
	Title       *string           `json:"title" validate:"omitempty,max=200"`
	Description *string           `json:"description" validate:"omitempty,max=1000"`
	Content     *string           `json:"content" validate:"omitempty,max=10000"`
	Keywords    *[]string         `json:"keywords"`
	Parameters  *[]map[string]any `json:"parameters"`
	IsPublic    *bool             `json:"is_public"`
	IsActive    *bool             `json:"is_active"`
	CategoryID  *uint             `json:"category_id"`
}

// PromptGenerationCreate requests a new generation against a template.
type PromptGenerationCreate struct {
	PromptTemplateID uint           `json:"prompt_template_id" validate:"required"`
	InputParameters  map[string]any `json:"input_parameters"`
	OpenAIModel      string         `json:"openai_model" validate:"omitempty,max=50"`
}

// ApplyDefaults fills the default model when none was supplied.
func (g *PromptGenerationCreate) ApplyDefaults() {
	if g.OpenAIModel == "" {
		g.OpenAIModel = models.DefaultGenerationModel
	}
}

// PromptGenerationUpdate carries the fields the external-call collaborator
// writes back onto a pending generation. Status is free text by design;
// conventional values are the models.GenerationStatus* constants.
type PromptGenerationUpdate struct {
	OpenAIResponse *string          `json:"openai_response" validate:"omitempty,max=50000"`
	TokensUsed     *int             `json:"tokens_used"`
	Cost           *decimal.Decimal `json:"cost"`
	Status         *string          `json:"status" validate:"omitempty,max=20"`
	ErrorMessage   *string          `json:"error_message" validate:"omitempty,max=1000"`
	CompletedAt    *time.Time       `json:"completed_at"`
}

// PromptTemplateSearch is the search/filter shape with pagination bounds.
// Out-of-range limit or offset values are rejected, not clamped.
type PromptTemplateSearch struct {
	Query      *string  `json:"query" validate:"omitempty,max=200"`
	CategoryID *uint    `json:"category_id"`
	Keywords   []string `json:"keywords"`
	UserID     *uint    `json:"user_id"`
	IsPublic   *bool    `json:"is_public"`
	IsActive   *bool    `json:"is_active"`
	Limit      *int     `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset     *int     `json:"offset" validate:"omitempty,min=0"`
}

// ApplyDefaults fills pagination defaults for absent fields. Explicit values
// outside their range still fail validation.
func (s *PromptTemplateSearch) ApplyDefaults() {
	if s.Limit == nil {
		limit := 20
		s.Limit = &limit
	}
	if s.Offset == nil {
		offset := 0
		s.Offset = &offset
	}
}

// CategoryUsage is one row of the dashboard's top-categories aggregate.
type CategoryUsage struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Count      int64  `json:"count"`
}

// MonthlyUsage is one row of the dashboard's per-month generation counts.
// Month uses the "2006-01" layout.
type MonthlyUsage struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// UserDashboardStats is a pure read-aggregate assembled from store queries.
// It carries no validation.
type UserDashboardStats struct {
	TotalTemplates    int64                     `json:"total_templates"`
	TotalGenerations  int64                     `json:"total_generations"`
	TotalFavorites    int64                     `json:"total_favorites"`
	RecentGenerations []models.PromptGeneration `json:"recent_generations"`
	TopCategories     []CategoryUsage           `json:"top_categories"`
	MonthlyUsage      []MonthlyUsage            `json:"monthly_usage"`
}
