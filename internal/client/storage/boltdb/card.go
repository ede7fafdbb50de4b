package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"go.etcd.io/bbolt"
	"golang.org/x/text/cases"

	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/models"
)

// SaveCard создает или перезаписывает карточку.
// JSON карточки и изображение пишутся в одной транзакции.
func (s *Storage) SaveCard(ctx context.Context, card *models.Card) error {
	if card == nil || card.ID == "" {
		return fmt.Errorf("card id is required")
	}

	data, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		cards, err := bucket(tx, bucketCards)
		if err != nil {
			return err
		}
		images, err := bucket(tx, bucketImages)
		if err != nil {
			return err
		}

		if err := cards.Put([]byte(card.ID), data); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}

		// Пустое изображение удаляет ранее сохраненное
		if len(card.ImageData) == 0 {
			if err := images.Delete([]byte(card.ID)); err != nil {
				return fmt.Errorf("failed to delete card image: %w", err)
			}
			return nil
		}
		if err := images.Put([]byte(card.ID), card.ImageData); err != nil {
			return fmt.Errorf("failed to save card image: %w", err)
		}
		return nil
	})
}

// GetCard возвращает карточку вместе с изображением
func (s *Storage) GetCard(ctx context.Context, id string) (*models.Card, error) {
	var card *models.Card

	err := s.view(func(tx *bbolt.Tx) error {
		cards, err := bucket(tx, bucketCards)
		if err != nil {
			return err
		}
		images, err := bucket(tx, bucketImages)
		if err != nil {
			return err
		}

		data := cards.Get([]byte(id))
		if data == nil {
			return storage.ErrCardNotFound
		}

		card, err = decodeCard(data, images)
		return err
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// ListCards возвращает все карточки, новые первыми
func (s *Storage) ListCards(ctx context.Context) ([]*models.Card, error) {
	return s.listCards(true)
}

// ListCardSummaries возвращает карточки без изображений, новые первыми
func (s *Storage) ListCardSummaries(ctx context.Context) ([]*models.Card, error) {
	return s.listCards(false)
}

func (s *Storage) listCards(withImages bool) ([]*models.Card, error) {
	var result []*models.Card

	err := s.view(func(tx *bbolt.Tx) error {
		cards, err := bucket(tx, bucketCards)
		if err != nil {
			return err
		}
		// без изображений бакет images не читается вовсе
		var images *bbolt.Bucket
		if withImages {
			if images, err = bucket(tx, bucketImages); err != nil {
				return err
			}
		}

		return cards.ForEach(func(k, v []byte) error {
			card, err := decodeCard(v, images)
			if err != nil {
				return err
			}
			result = append(result, card)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(result, func(a, b *models.Card) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

// SearchCards фильтрует карточки по имени, компании и должности
func (s *Storage) SearchCards(ctx context.Context, query string) ([]*models.Card, error) {
	all, err := s.ListCards(ctx)
	if err != nil {
		return nil, err
	}

	if query == "" {
		return all, nil
	}

	fold := cases.Fold()
	q := fold.String(query)

	var result []*models.Card
	for _, card := range all {
		if strings.Contains(fold.String(card.Name), q) ||
			strings.Contains(fold.String(card.CompanyName), q) ||
			strings.Contains(fold.String(card.Title), q) {
			result = append(result, card)
		}
	}

	return result, nil
}

// DeleteCard удаляет карточку и ее изображение
func (s *Storage) DeleteCard(ctx context.Context, id string) error {
	return s.update(func(tx *bbolt.Tx) error {
		cards, err := bucket(tx, bucketCards)
		if err != nil {
			return err
		}
		images, err := bucket(tx, bucketImages)
		if err != nil {
			return err
		}

		if cards.Get([]byte(id)) == nil {
			return storage.ErrCardNotFound
		}

		if err := cards.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}
		if err := images.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete card image: %w", err)
		}
		return nil
	})
}

// MarkSynced выставляет флаг синхронизации, не трогая остальные поля
func (s *Storage) MarkSynced(ctx context.Context, id string, synced bool) error {
	return s.update(func(tx *bbolt.Tx) error {
		cards, err := bucket(tx, bucketCards)
		if err != nil {
			return err
		}

		data := cards.Get([]byte(id))
		if data == nil {
			return storage.ErrCardNotFound
		}

		var card models.Card
		if err := json.Unmarshal(data, &card); err != nil {
			return fmt.Errorf("failed to unmarshal card: %w", err)
		}
		card.IsSyncedToCloud = synced

		updated, err := json.Marshal(&card)
		if err != nil {
			return fmt.Errorf("failed to marshal card: %w", err)
		}
		if err := cards.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}
		return nil
	})
}

// Clear удаляет все карточки и изображения
func (s *Storage) Clear(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketCards, bucketImages} {
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to drop %s bucket: %w", name, err)
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// decodeCard разбирает JSON карточки и подставляет изображение.
// Значения bbolt валидны только внутри транзакции, поэтому изображение копируется.
func decodeCard(data []byte, images *bbolt.Bucket) (*models.Card, error) {
	card := &models.Card{}
	if err := json.Unmarshal(data, card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	if images == nil {
		return card, nil
	}
	if img := images.Get([]byte(card.ID)); img != nil {
		card.ImageData = slices.Clone(img)
	}

	return card, nil
}
