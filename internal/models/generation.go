package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Conventional generation status values. The column is free text, not a
// closed enum; these constants cover the informal
// pending -> completed | failed transition driven by the external caller.
const (
	GenerationStatusPending   = "pending"
	GenerationStatusCompleted = "completed"
	GenerationStatusFailed    = "failed"
)

// DefaultGenerationModel is used when a generation request names no model.
const DefaultGenerationModel = "gpt-3.5-turbo"

// PromptGeneration records one invocation of the external text-generation
// API: the substituted prompt that was sent, and the response fields the
// external-call collaborator writes back on completion or failure.
type PromptGeneration struct {
	ID               uint              `json:"id" gorm:"primarykey"`
	UserID           uint              `json:"user_id" gorm:"not null;index"`
	PromptTemplateID uint              `json:"prompt_template_id" gorm:"not null;index"`
	InputParameters  datatypes.JSONMap `json:"input_parameters"`
	GeneratedPrompt  string            `json:"generated_prompt" gorm:"type:text;not null"`
	OpenAIResponse   *string           `json:"openai_response,omitempty" gorm:"type:text"`
	OpenAIModel      string            `json:"openai_model" gorm:"type:varchar(50);not null;default:'gpt-3.5-turbo'"`
	TokensUsed       *int              `json:"tokens_used,omitempty"`
	Cost             decimal.Decimal   `json:"cost" gorm:"type:decimal(10,6);default:0"`
	Status           string            `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ErrorMessage     *string           `json:"error_message,omitempty" gorm:"type:varchar(1000)"`
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`

	User           *User           `json:"-" gorm:"foreignKey:UserID"`
	PromptTemplate *PromptTemplate `json:"-" gorm:"foreignKey:PromptTemplateID"`
}

// TableName overrides the table name.
func (PromptGeneration) TableName() string {
	return "prompt_generations"
}
