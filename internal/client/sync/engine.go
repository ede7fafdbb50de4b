// Package sync reconciles the local card store with the per-user cloud
// collection. Each card carries a single synced flag; the card ID is the
// only join key between the two sides.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/models"
)

//go:generate moq -out engine_mock.go . RemoteRepository

// RemoteRepository - облачная коллекция карточек текущего пользователя
type RemoteRepository interface {
	Put(ctx context.Context, card *models.Card) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*models.Card, error)
	DeleteAllForUser(ctx context.Context) error
}

// Config настраивает Engine
type Config struct {
	// Workers - сколько карточек PushAll отправляет параллельно. 0 и 1 означают последовательную отправку.
	Workers int
}

// Engine выполняет синхронизацию и хранит наблюдаемое состояние.
// Состояние меняется только методами Engine.
type Engine struct {
	remote   RemoteRepository
	identity remote.IdentityProvider
	cards    storage.CardStorage
	metadata storage.MetadataStorage
	session  *Session
	logger   *slog.Logger
	now      func() time.Time

	subscribers map[int]func(State)
	state       State
	workers     int
	active      int
	nextSubID   int
	mu          gosync.Mutex
}

// NewEngine создает движок синхронизации
func NewEngine(
	remoteRepo RemoteRepository,
	identity remote.IdentityProvider,
	cards storage.CardStorage,
	metadata storage.MetadataStorage,
	session *Session,
	cfg Config,
	logger *slog.Logger,
) *Engine {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if session == nil {
		session = NewSession()
	}

	return &Engine{
		remote:      remoteRepo,
		identity:    identity,
		cards:       cards,
		metadata:    metadata,
		session:     session,
		logger:      logger,
		now:         time.Now,
		workers:     workers,
		subscribers: make(map[int]func(State)),
	}
}

// PushResult - итог PushAll
type PushResult struct {
	Errors []ItemError // ошибки по отдельным карточкам
	Synced int         // успешно отправлено и помечено
	Failed int         // не отправлено или не помечено
}

// ItemError описывает ошибку по одной карточке
type ItemError struct {
	CardID  string
	Message string
}

// PullResult - итог PullMerge
type PullResult struct {
	Fetched  int // документов получено из облака
	Imported int // новых карточек сохранено локально
	Skipped  int // ID уже есть локально, облачная версия не применяется
	Failed   int // не удалось сохранить локально
}

// PushAll отправляет каждую карточку в облако. Ошибка по одной карточке
// не останавливает остальные; успешно отправленные помечаются синхронизированными.
// Частичный прогресс не откатывается.
func (e *Engine) PushAll(ctx context.Context, cards []*models.Card) (*PushResult, error) {
	if _, ok := e.identity.CurrentUserID(ctx); !ok {
		e.fail(remote.ErrNotAuthenticated)
		return nil, remote.ErrNotAuthenticated
	}

	e.begin()
	e.logger.InfoContext(ctx, "starting push", slog.Int("cards", len(cards)), slog.Int("workers", e.workers))

	result := &PushResult{}
	var mu gosync.Mutex

	var g errgroup.Group
	g.SetLimit(e.workers)

	for _, card := range cards {
		g.Go(func() error {
			err := e.pushOne(ctx, card)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, ItemError{CardID: card.ID, Message: err.Error()})
				return nil
			}
			result.Synced++
			return nil
		})
	}
	// Горутины не возвращают ошибок, отмена соседей не нужна
	_ = g.Wait()

	at := e.now()
	if err := e.metadata.SaveLastSyncTime(ctx, storage.SyncKindPush, at); err != nil {
		e.logger.WarnContext(ctx, "failed to save last push time", slog.Any("error", err))
	}

	e.logger.InfoContext(ctx, "push finished",
		slog.Int("synced", result.Synced),
		slog.Int("failed", result.Failed))

	e.finish(func(s *State) {
		s.LastPushAt = at
		s.ErrorMessage = ""
		s.Notice = fmt.Sprintf("Synced %d cards, %d failed.", result.Synced, result.Failed)
	})

	return result, nil
}

// PushCard отправляет одну карточку и при успехе помечает ее синхронизированной.
// Используется фоновой отправкой после сохранения новой карточки.
func (e *Engine) PushCard(ctx context.Context, card *models.Card) error {
	return e.pushOne(ctx, card)
}

func (e *Engine) pushOne(ctx context.Context, card *models.Card) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.remote.Put(ctx, card); err != nil {
		e.logger.WarnContext(ctx, "failed to push card", slog.String("card_id", card.ID), slog.Any("error", err))
		return err
	}

	if err := e.cards.MarkSynced(ctx, card.ID, true); err != nil {
		e.logger.WarnContext(ctx, "failed to mark card synced", slog.String("card_id", card.ID), slog.Any("error", err))
		return fmt.Errorf("failed to mark card synced: %w", err)
	}

	card.IsSyncedToCloud = true
	return nil
}

// PullMerge импортирует из облака карточки, ID которых нет локально.
// Облачные изменения карточек, уже существующих локально, не применяются.
func (e *Engine) PullMerge(ctx context.Context, localCards []*models.Card) (*PullResult, error) {
	if _, ok := e.identity.CurrentUserID(ctx); !ok {
		e.fail(remote.ErrNotAuthenticated)
		return nil, remote.ErrNotAuthenticated
	}

	e.begin()

	remoteCards, err := e.remote.ListAll(ctx)
	if err != nil {
		e.logger.ErrorContext(ctx, "failed to fetch cards from cloud", slog.Any("error", err))
		e.finish(func(s *State) {
			s.ErrorMessage = err.Error()
		})
		return nil, fmt.Errorf("failed to fetch cards: %w", err)
	}

	known := make(map[string]struct{}, len(localCards))
	for _, card := range localCards {
		known[card.ID] = struct{}{}
	}

	result := &PullResult{Fetched: len(remoteCards)}
	for _, card := range remoteCards {
		if _, ok := known[card.ID]; ok {
			result.Skipped++
			continue
		}

		// Карточка могла появиться локально после того, как был прочитан localCards
		if _, err := e.cards.GetCard(ctx, card.ID); err == nil {
			known[card.ID] = struct{}{}
			result.Skipped++
			continue
		} else if !errors.Is(err, storage.ErrCardNotFound) {
			e.logger.WarnContext(ctx, "failed to check local card", slog.String("card_id", card.ID), slog.Any("error", err))
			result.Failed++
			continue
		}

		card.IsSyncedToCloud = true
		if err := e.cards.SaveCard(ctx, card); err != nil {
			e.logger.WarnContext(ctx, "failed to save pulled card", slog.String("card_id", card.ID), slog.Any("error", err))
			result.Failed++
			continue
		}

		known[card.ID] = struct{}{}
		result.Imported++
	}

	at := e.now()
	if err := e.metadata.SaveLastSyncTime(ctx, storage.SyncKindPull, at); err != nil {
		e.logger.WarnContext(ctx, "failed to save last pull time", slog.Any("error", err))
	}

	e.logger.InfoContext(ctx, "pull finished",
		slog.Int("fetched", result.Fetched),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed))

	e.finish(func(s *State) {
		s.LastPullAt = at
		s.ErrorMessage = ""
		s.Notice = fmt.Sprintf("Imported %d cards from cloud.", result.Imported)
	})

	return result, nil
}

// PullOnLogin выполняет PullMerge один раз за сессию.
// Флаг сессии выставляется до начала загрузки, поэтому параллельные
// вызовы не запускают вторую загрузку. Возвращает false, если загрузка
// в этой сессии уже выполнялась.
func (e *Engine) PullOnLogin(ctx context.Context) (bool, error) {
	if !e.session.TryBegin() {
		return false, nil
	}

	local, err := e.cards.ListCardSummaries(ctx)
	if err != nil {
		e.fail(err)
		return true, fmt.Errorf("failed to list local cards: %w", err)
	}

	if _, err := e.PullMerge(ctx, local); err != nil {
		return true, err
	}
	return true, nil
}

// DeleteCard удаляет карточку локально, затем из облака.
// Ошибка удаления в облаке только логируется.
func (e *Engine) DeleteCard(ctx context.Context, id string) error {
	if err := e.cards.DeleteCard(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	if _, ok := e.identity.CurrentUserID(ctx); !ok {
		return nil
	}

	if err := e.remote.Delete(ctx, id); err != nil {
		e.logger.WarnContext(ctx, "failed to delete card from cloud", slog.String("card_id", id), slog.Any("error", err))
	}
	return nil
}

// DeleteAccountData удаляет все карточки пользователя из облака и затем
// очищает локальное хранилище. При ошибке облака локальные данные сохраняются.
func (e *Engine) DeleteAccountData(ctx context.Context) error {
	e.begin()

	if err := e.remote.DeleteAllForUser(ctx); err != nil {
		e.finish(func(s *State) { s.ErrorMessage = err.Error() })
		return fmt.Errorf("failed to delete cloud data: %w", err)
	}

	if err := e.cards.Clear(ctx); err != nil {
		e.finish(func(s *State) { s.ErrorMessage = err.Error() })
		return fmt.Errorf("failed to clear local cards: %w", err)
	}

	e.finish(func(s *State) {
		s.ErrorMessage = ""
		s.Notice = "All cards deleted."
	})
	return nil
}
