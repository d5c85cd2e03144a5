package services

import (
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"prompthub/internal/models"
	"prompthub/internal/repositories"
	"prompthub/internal/schemas"
	"prompthub/pkg/rabbitmq"
)

// maxGeneratedPromptLen bounds the substituted prompt text.
const maxGeneratedPromptLen = 15000

// GenerationService handles the lifecycle of generation records: created in
// pending state, announced on the queue, and later completed or failed by
// the external-call collaborator through UpdateGeneration.
type GenerationService struct {
	generationRepo repositories.GenerationRepository
	templateRepo   repositories.PromptTemplateRepository
	mqClient       *rabbitmq.Client // optional, nil skips event publishing
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(
	generationRepo repositories.GenerationRepository,
	templateRepo repositories.PromptTemplateRepository,
	mqClient *rabbitmq.Client,
) *GenerationService {
	return &GenerationService{
		generationRepo: generationRepo,
		templateRepo:   templateRepo,
		mqClient:       mqClient,
	}
}

// CreateGeneration validates the request, substitutes the template's
// placeholders with the supplied parameter values and persists a pending
// generation record. A generation-requested event is published best effort.
func (s *GenerationService) CreateGeneration(userID uint, req schemas.PromptGenerationCreate) (*models.PromptGeneration, error) {
	req.ApplyDefaults()
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	template, err := s.templateRepo.GetByID(req.PromptTemplateID)
	if err != nil {
		return nil, err
	}
	if !template.IsPublic && template.UserID != userID {
		return nil, ErrPermissionDenied
	}
	if !template.IsActive {
		return nil, fmt.Errorf("prompt template %d is retired: %w", template.ID, repositories.ErrNotFound)
	}

	prompt := RenderPrompt(template.Content, req.InputParameters)
	// The limit counts characters, not bytes.
	if utf8.RuneCountInString(prompt) > maxGeneratedPromptLen {
		return nil, schemas.ValidationErrors{{Field: "generated_prompt", Rule: "max"}}
	}

	generation := &models.PromptGeneration{
		UserID:           userID,
		PromptTemplateID: template.ID,
		InputParameters:  req.InputParameters,
		GeneratedPrompt:  prompt,
		OpenAIModel:      req.OpenAIModel,
		Cost:             decimal.Zero,
		Status:           models.GenerationStatusPending,
	}
	if err := s.generationRepo.Create(generation); err != nil {
		return nil, err
	}

	if err := s.templateRepo.IncrementUsage(template.ID); err != nil {
		log.Printf("Warning: failed to increment usage for template %d: %v", template.ID, err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"event_id":           uuid.New().String(),
			"generation_id":      generation.ID,
			"user_id":            generation.UserID,
			"prompt_template_id": generation.PromptTemplateID,
			"openai_model":       generation.OpenAIModel,
			"status":             generation.Status,
		}
		if err := s.mqClient.PublishGenerationRequested(event); err != nil {
			log.Printf("Warning: failed to publish generation requested event for generation %d: %v", generation.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return generation, nil
}

// GetGeneration retrieves a generation record. Records are visible only to
// their owner.
func (s *GenerationService) GetGeneration(id, userID uint) (*models.PromptGeneration, error) {
	generation, err := s.generationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if generation.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return generation, nil
}

// ListGenerations retrieves a user's generation records, newest first.
func (s *GenerationService) ListGenerations(userID uint, limit, offset int) ([]models.PromptGeneration, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.generationRepo.ListByUser(userID, limit, offset)
}

// UpdateGeneration applies the response fields the external-call
// collaborator writes back. Absent fields stay unchanged; the status string
// is not constrained to the conventional values.
func (s *GenerationService) UpdateGeneration(id, userID uint, req schemas.PromptGenerationUpdate) (*models.PromptGeneration, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	generation, err := s.generationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if generation.UserID != userID {
		return nil, ErrPermissionDenied
	}

	if req.OpenAIResponse != nil {
		generation.OpenAIResponse = req.OpenAIResponse
	}
	if req.TokensUsed != nil {
		generation.TokensUsed = req.TokensUsed
	}
	if req.Cost != nil {
		generation.Cost = *req.Cost
	}
	if req.Status != nil {
		generation.Status = *req.Status
	}
	if req.ErrorMessage != nil {
		generation.ErrorMessage = req.ErrorMessage
	}
	if req.CompletedAt != nil {
		generation.CompletedAt = req.CompletedAt
	}

	if err := s.generationRepo.Update(generation); err != nil {
		return nil, err
	}
	return generation, nil
}

// RenderPrompt substitutes {name} placeholders in the template content with
// the given parameter values. Unknown placeholders are left untouched. A
// single pass over the content means substituted values are emitted verbatim,
// never re-scanned for placeholders.
func RenderPrompt(content string, params map[string]any) string {
	var b strings.Builder
	for i := 0; i < len(content); {
		open := strings.IndexByte(content[i:], '{')
		if open < 0 {
			b.WriteString(content[i:])
			break
		}
		open += i
		b.WriteString(content[i:open])

		end := strings.IndexByte(content[open:], '}')
		if end < 0 {
			b.WriteString(content[open:])
			break
		}
		end += open

		if value, ok := params[content[open+1:end]]; ok {
			b.WriteString(fmt.Sprint(value))
		} else {
			b.WriteString(content[open : end+1])
		}
		i = end + 1
	}
	return b.String()
}
