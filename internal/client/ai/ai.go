// Package ai talks to the vision model that reads business cards and
// writes the company and role summaries.
package ai

import (
	"context"
	"errors"

	"github.com/iudanet/cardconnect/internal/models"
)

// ErrModel - модель не ответила или ответ не удалось разобрать
var ErrModel = errors.New("model request failed")

//go:generate moq -out ai_mock.go . Extractor Enricher

// Extractor распознает карточки на изображении
type Extractor interface {
	// Extract возвращает черновики всех карточек на изображении.
	// Ошибки оборачиваются в ErrModel.
	Extract(ctx context.Context, image []byte, mediaType string) ([]models.CardDraft, error)
}

// Enricher генерирует описания компании и роли.
// Никогда не возвращает ошибку: при сбое отдает models.FallbackEnrichment.
type Enricher interface {
	Enrich(ctx context.Context, draft models.CardDraft) models.Enrichment
}
