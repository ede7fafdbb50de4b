// Package ingest turns a photo of one or more business cards into saved
// local records: extraction, duplicate check, enrichment, local save and
// a background push when a user is signed in.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/cardconnect/internal/client/ai"
	"github.com/iudanet/cardconnect/internal/client/dedup"
	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/imagecodec"
	"github.com/iudanet/cardconnect/internal/models"
)

const (
	// NoCardsNotice показывается, когда на изображении не найдено ни одной карточки
	NoCardsNotice = "No business cards found in the image."
	// pushTimeout ограничивает фоновую отправку одной карточки
	pushTimeout = 30 * time.Second
)

//go:generate moq -out pipeline_mock.go . Pusher

// Pusher отправляет одну карточку в облако и помечает ее синхронизированной
type Pusher interface {
	PushCard(ctx context.Context, card *models.Card) error
}

// Report - итог обработки одного изображения
type Report struct {
	Drafts     []models.CardDraft
	Added      []*models.Card
	Duplicates []string // имена карточек, пропущенных как дубликаты
	Notices    []string
	Failed     int // не удалось сохранить локально
}

// DuplicateNotice формирует сообщение о пропущенном дубликате
func DuplicateNotice(name string) string {
	return fmt.Sprintf("Duplicate card found for %s. It was not added.", name)
}

// Pipeline обрабатывает изображения с визитками
type Pipeline struct {
	extractor ai.Extractor
	enricher  ai.Enricher
	cards     storage.CardStorage
	detector  *dedup.Detector
	identity  remote.IdentityProvider
	pusher    Pusher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string

	pushes sync.WaitGroup
}

// NewPipeline создает конвейер обработки
func NewPipeline(
	extractor ai.Extractor,
	enricher ai.Enricher,
	cards storage.CardStorage,
	identity remote.IdentityProvider,
	pusher Pusher,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		enricher:  enricher,
		cards:     cards,
		detector:  dedup.NewDetector(),
		identity:  identity,
		pusher:    pusher,
		logger:    logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Process извлекает карточки из изображения и сохраняет новые.
// Ошибка возвращается только если не удалось извлечь карточки;
// проблемы с отдельными карточками попадают в Report.
func (p *Pipeline) Process(ctx context.Context, image []byte) (*Report, error) {
	mediaType := http.DetectContentType(image)

	drafts, err := p.extractor.Extract(ctx, image, mediaType)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to extract cards", slog.Any("error", err))
		return nil, err
	}

	report := &Report{Drafts: drafts}
	if len(drafts) == 0 {
		report.Notices = append(report.Notices, NoCardsNotice)
		return report, nil
	}

	stored := imagecodec.Reencode(image, imagecodec.LocalQuality)
	_, signedIn := p.identity.CurrentUserID(ctx)

	for _, draft := range drafts {
		// Перечитываем хранилище на каждую карточку: сохраненные ранее
		// карточки того же изображения тоже участвуют в проверке
		existing, err := p.cards.ListCardSummaries(ctx)
		if err != nil {
			p.logger.ErrorContext(ctx, "failed to list cards", slog.Any("error", err))
			report.Failed++
			continue
		}

		if _, dup := p.detector.Find(draft, existing); dup {
			p.logger.InfoContext(ctx, "duplicate card skipped", slog.String("name", draft.Name))
			report.Duplicates = append(report.Duplicates, draft.Name)
			report.Notices = append(report.Notices, DuplicateNotice(draft.Name))
			continue
		}

		enrichment := p.enricher.Enrich(ctx, draft)
		card := models.NewCardFromDraft(p.newID(), p.now(), draft, enrichment)
		card.ImageData = stored

		if err := p.cards.SaveCard(ctx, card); err != nil {
			p.logger.ErrorContext(ctx, "failed to save card", slog.String("card_id", card.ID), slog.Any("error", err))
			report.Failed++
			continue
		}

		p.logger.InfoContext(ctx, "card saved", slog.String("card_id", card.ID), slog.String("name", card.Name))
		report.Added = append(report.Added, card)

		if signedIn {
			p.pushAsync(ctx, card)
		}
	}

	return report, nil
}

// pushAsync отправляет копию карточки в фоне. Неудача оставляет карточку
// несинхронизированной, ее подхватит следующий PushAll.
func (p *Pipeline) pushAsync(ctx context.Context, card *models.Card) {
	cp := *card
	p.pushes.Add(1)
	go func() {
		defer p.pushes.Done()

		pushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), pushTimeout)
		defer cancel()

		if err := p.pusher.PushCard(pushCtx, &cp); err != nil {
			p.logger.WarnContext(pushCtx, "background push failed", slog.String("card_id", cp.ID), slog.Any("error", err))
		}
	}()
}

// Wait блокируется до завершения фоновых отправок
func (p *Pipeline) Wait() {
	p.pushes.Wait()
}

// Reenrich заново получает описание компании и роли для существующей карточки.
// Флаг синхронизации не меняется.
func (p *Pipeline) Reenrich(ctx context.Context, id string) (*models.Card, error) {
	card, err := p.cards.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load card: %w", err)
	}

	card.ApplyEnrichment(p.enricher.Enrich(ctx, card.Draft()))

	if err := p.cards.SaveCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}
	return card, nil
}
