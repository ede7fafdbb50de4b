package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iudanet/cardconnect/internal/models"
)

// noTextDescription - значение, если модель вернула пустой ответ
const noTextDescription = "Could not generate description."

// StripFences убирает markdown-ограждение ```json ... ``` вокруг ответа модели
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// ParseDrafts разбирает JSON массив карточек из ответа модели
func ParseDrafts(text string) ([]models.CardDraft, error) {
	clean := StripFences(text)
	if clean == "" {
		return nil, fmt.Errorf("%w: empty response", ErrModel)
	}

	var drafts []models.CardDraft
	if err := json.Unmarshal([]byte(clean), &drafts); err != nil {
		return nil, fmt.Errorf("%w: failed to decode drafts: %w", ErrModel, err)
	}

	return drafts, nil
}

// enrichmentResult - ответ модели; любое поле может отсутствовать
type enrichmentResult struct {
	CompanyDescription *string `json:"companyDescription"`
	RoleDescription    *string `json:"roleDescription"`
	Industry           *string `json:"industry"`
}

// ParseEnrichment разбирает ответ модели с описаниями.
// Пустой ответ и невалидный JSON дают запасные значения.
func ParseEnrichment(text string) models.Enrichment {
	clean := StripFences(text)
	if clean == "" {
		return models.Enrichment{
			CompanyDescription: noTextDescription,
			RoleDescription:    noTextDescription,
			Industry:           models.FallbackIndustry,
		}
	}

	var res enrichmentResult
	if err := json.Unmarshal([]byte(clean), &res); err != nil {
		return models.FallbackEnrichment()
	}

	e := models.Enrichment{Industry: models.FallbackIndustry}
	if res.CompanyDescription != nil {
		e.CompanyDescription = *res.CompanyDescription
	}
	if res.RoleDescription != nil {
		e.RoleDescription = *res.RoleDescription
	}
	if res.Industry != nil {
		e.Industry = *res.Industry
	}
	return e
}
