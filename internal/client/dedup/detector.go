// Package dedup decides whether a freshly extracted draft duplicates a stored card.
package dedup

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/iudanet/cardconnect/internal/models"
)

// Detector сравнивает черновик с уже сохраненными карточками
type Detector struct{}

// NewDetector создает детектор дубликатов
func NewDetector() *Detector {
	return &Detector{}
}

// Find возвращает первую карточку, у которой имя содержит имя черновика
// и название компании содержит компанию черновика (без учета регистра).
//
// Пустое поле черновика совпадает только с пустым полем карточки: пустой
// черновик - дубликат пустой карточки, но не любой.
func (d *Detector) Find(draft models.CardDraft, existing []*models.Card) (*models.Card, bool) {
	// Caser хранит состояние, поэтому создается на каждый вызов
	fold := cases.Fold()
	name := fold.String(draft.Name)
	company := fold.String(draft.CompanyName)

	for _, card := range existing {
		if card == nil {
			continue
		}
		if fieldMatches(fold.String(card.Name), name) &&
			fieldMatches(fold.String(card.CompanyName), company) {
			return card, true
		}
	}

	return nil, false
}

func fieldMatches(stored, draft string) bool {
	if draft == "" {
		return stored == ""
	}
	return strings.Contains(stored, draft)
}
