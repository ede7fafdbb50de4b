package storage

import (
	"context"

	"github.com/iudanet/cardconnect/internal/models"
)

//go:generate moq -out card_mock.go . CardStorage

// CardStorage - локальное хранилище карточек на устройстве.
// Все изменения проходят через единственного писателя хранилища,
// чтение может идти параллельно.
type CardStorage interface {
	// SaveCard создает или перезаписывает карточку вместе с изображением
	SaveCard(ctx context.Context, card *models.Card) error

	// GetCard возвращает карточку по ID
	// Returns ErrCardNotFound if card doesn't exist
	GetCard(ctx context.Context, id string) (*models.Card, error)

	// ListCards возвращает все карточки, новые первыми (CreatedAt desc)
	ListCards(ctx context.Context) ([]*models.Card, error)

	// ListCardSummaries как ListCards, но без ImageData.
	// Для проверок по полям карточки (дубликаты, набор ID, статистика).
	ListCardSummaries(ctx context.Context) ([]*models.Card, error)

	// SearchCards ищет подстроку без учета регистра в имени, компании и должности.
	// Пустой запрос возвращает все карточки.
	SearchCards(ctx context.Context, query string) ([]*models.Card, error)

	// DeleteCard удаляет карточку и ее изображение
	// Returns ErrCardNotFound if card doesn't exist
	DeleteCard(ctx context.Context, id string) error

	// MarkSynced выставляет флаг IsSyncedToCloud
	MarkSynced(ctx context.Context, id string, synced bool) error

	// Clear удаляет все карточки (удаление аккаунта)
	Clear(ctx context.Context) error
}
