package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/cardconnect/internal/imagecodec"
	"github.com/iudanet/cardconnect/internal/models"
	"github.com/iudanet/cardconnect/pkg/api"
)

// Repository - адаптер между карточками и облачными документами
type Repository struct {
	store     DocumentStore
	identity  IdentityProvider
	logger    *slog.Logger
	now       func() time.Time
	imageOpts imagecodec.Options
}

// NewRepository создает репозиторий поверх транспорта и провайдера личности
func NewRepository(store DocumentStore, identity IdentityProvider, imageOpts imagecodec.Options, logger *slog.Logger) *Repository {
	return &Repository{
		store:     store,
		identity:  identity,
		imageOpts: imageOpts,
		logger:    logger,
		now:       time.Now,
	}
}

// Put сохраняет карточку в облаке под ее ID, перезаписывая документ.
// UpdatedAt обновляется при каждом вызове.
func (r *Repository) Put(ctx context.Context, card *models.Card) error {
	userID, err := r.userID(ctx)
	if err != nil {
		return err
	}

	doc := r.toDocument(card)
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal card document: %w", err)
	}

	if err := r.store.PutDocument(ctx, userID, card.ID, body); err != nil {
		return fmt.Errorf("failed to put card %s: %w", card.ID, err)
	}

	return nil
}

// Delete удаляет документ карточки. Повторное удаление не ошибка.
func (r *Repository) Delete(ctx context.Context, id string) error {
	userID, err := r.userID(ctx)
	if err != nil {
		return err
	}

	if err := r.store.DeleteDocument(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete card %s: %w", id, err)
	}

	return nil
}

// ListAll возвращает все карточки пользователя.
// Документы, которые не удалось разобрать, пропускаются.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Card, error) {
	userID, err := r.userID(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := r.store.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := make([]*models.Card, 0, len(docs))
	for _, body := range docs {
		card, err := r.fromDocument(body)
		if err != nil {
			r.logger.WarnContext(ctx, "skipping card document", slog.Any("error", err))
			continue
		}
		cards = append(cards, card)
	}

	return cards, nil
}

// DeleteAllForUser удаляет всю коллекцию пользователя (удаление аккаунта)
func (r *Repository) DeleteAllForUser(ctx context.Context) error {
	userID, err := r.userID(ctx)
	if err != nil {
		return err
	}

	if err := r.store.DeleteCollection(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user cards: %w", err)
	}

	return nil
}

func (r *Repository) userID(ctx context.Context) (string, error) {
	userID, ok := r.identity.CurrentUserID(ctx)
	if !ok || userID == "" {
		return "", ErrNotAuthenticated
	}
	return userID, nil
}

func (r *Repository) toDocument(card *models.Card) *api.CardDocument {
	doc := &api.CardDocument{
		ID:                    card.ID,
		Name:                  card.Name,
		Title:                 card.Title,
		Phone:                 card.Phone,
		Email:                 card.Email,
		Website:               card.Website,
		CompanyName:           card.CompanyName,
		Department:            card.Department,
		Address:               card.Address,
		CompanyDescription:    card.CompanyDescription,
		PersonRoleDescription: card.PersonRoleDescription,
		Industry:              card.Industry,
		CreatedAt:             card.CreatedAt,
		UpdatedAt:             r.now(),
	}

	if len(card.ImageData) > 0 {
		encoded, ok := imagecodec.Compress(card.ImageData, r.imageOpts)
		if ok {
			doc.ImageDataBase64 = encoded
		} else {
			// Карточка уходит в облако без изображения
			r.logger.Warn("failed to compress card image", slog.String("card_id", card.ID))
		}
	}

	return doc
}

func (r *Repository) fromDocument(body []byte) (*models.Card, error) {
	var doc api.CardDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if doc.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrDecode)
	}

	card := &models.Card{
		ID:                    doc.ID,
		Name:                  doc.Name,
		Title:                 doc.Title,
		Phone:                 doc.Phone,
		Email:                 doc.Email,
		Website:               doc.Website,
		CompanyName:           doc.CompanyName,
		Department:            doc.Department,
		Address:               doc.Address,
		CompanyDescription:    doc.CompanyDescription,
		PersonRoleDescription: doc.PersonRoleDescription,
		Industry:              doc.Industry,
		CreatedAt:             doc.CreatedAt,
	}

	if doc.ImageDataBase64 != "" {
		image, err := imagecodec.DecodeBase64(doc.ImageDataBase64)
		if err != nil {
			r.logger.Warn("dropping undecodable card image", slog.String("card_id", doc.ID), slog.Any("error", err))
		} else {
			card.ImageData = image
		}
	}

	return card, nil
}
