package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"fitledger/internal/ai"
	apperrors "fitledger/internal/errors"
	"fitledger/internal/models"
)

// suggestionTTL is how long a generated suggestion stays fresh before a
// new one is requested from the model.
const suggestionTTL = 24 * time.Hour

// suggestionPrompts maps suggestion kinds to the prompt sent to the model.
var suggestionPrompts = map[string]string{
	"budget_tip":  "Give one short, practical tip for sticking to a monthly personal budget in Vietnam. Two sentences at most.",
	"meal_idea":   "Suggest one simple, affordable, protein-rich Vietnamese meal idea with a rough calorie estimate. Two sentences at most.",
	"workout_tip": "Give one short tip for staying consistent with strength training at home or in a gym. Two sentences at most.",
}

// suggestionService serves AI-generated advice, caching each kind in the
// database for a day.
type suggestionService struct {
	db        *gorm.DB
	completer ai.Completer
}

// NewSuggestionService creates a new SuggestionServicer. The completer may
// be nil when no API key is configured; suggestions are then unavailable.
func NewSuggestionService(db *gorm.DB, completer ai.Completer) SuggestionServicer {
	return &suggestionService{db: db, completer: completer}
}

// GetSuggestion returns a cached suggestion of the given kind, generating
// a fresh one when the cache is empty or expired.
func (s *suggestionService) GetSuggestion(ctx context.Context, kind string) (*models.Suggestion, error) {
	prompt, ok := suggestionPrompts[kind]
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown suggestion kind: "+kind)
	}

	var cached models.Suggestion
	err := s.db.Where("kind = ? AND expires_at > ?", kind, time.Now()).
		Order("created_at DESC").
		First(&cached).Error
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if s.completer == nil {
		return nil, apperrors.ErrSuggestionUnavailable
	}

	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrSuggestionUnavailable, err)
	}

	suggestion := &models.Suggestion{
		Kind:      kind,
		Content:   content,
		ExpiresAt: time.Now().Add(suggestionTTL),
	}
	if err := s.db.Create(suggestion).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return suggestion, nil
}
