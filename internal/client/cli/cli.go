// Package cli - команды клиента cardconnect
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/iudanet/cardconnect/internal/client/ingest"
	"github.com/iudanet/cardconnect/internal/client/iocli"
	"github.com/iudanet/cardconnect/internal/client/storage"
	cardsync "github.com/iudanet/cardconnect/internal/client/sync"
	"github.com/iudanet/cardconnect/internal/models"
)

//go:generate moq -out cli_mock.go . AuthService SyncEngine Ingestor

// AuthService - вход в аккаунт и текущая сессия
type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (*storage.AuthData, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*storage.AuthData, error)
	DeleteAccount(ctx context.Context) error
}

// SyncEngine - синхронизация с облачной коллекцией
type SyncEngine interface {
	PushAll(ctx context.Context, cards []*models.Card) (*cardsync.PushResult, error)
	PushCard(ctx context.Context, card *models.Card) error
	PullMerge(ctx context.Context, localCards []*models.Card) (*cardsync.PullResult, error)
	PullOnLogin(ctx context.Context) (bool, error)
	DeleteCard(ctx context.Context, id string) error
	DeleteAccountData(ctx context.Context) error
	LoadState(ctx context.Context) error
	CurrentState() cardsync.State
}

// Ingestor обрабатывает изображения визиток
type Ingestor interface {
	Process(ctx context.Context, image []byte) (*ingest.Report, error)
	Reenrich(ctx context.Context, id string) (*models.Card, error)
	Wait()
}

// Deps - зависимости команд
type Deps struct {
	IO     iocli.IO
	Auth   AuthService
	Engine SyncEngine
	Ingest Ingestor
	Cards  storage.CardStorage
	Logger *slog.Logger
}

// Cli выполняет команды поверх сервисов клиента
type Cli struct {
	io     iocli.IO
	auth   AuthService
	engine SyncEngine
	ingest Ingestor
	cards  storage.CardStorage
	logger *slog.Logger
	now    func() time.Time
	settle time.Duration // задержка обработки файла в watch
}

// New создает Cli
func New(d Deps) *Cli {
	return &Cli{
		io:     d.IO,
		auth:   d.Auth,
		engine: d.Engine,
		ingest: d.Ingest,
		cards:  d.Cards,
		logger: d.Logger,
		now:    time.Now,
	}
}

// signedIn сообщает, есть ли сохраненная сессия
func (c *Cli) signedIn(ctx context.Context) bool {
	_, err := c.auth.Session(ctx)
	return err == nil
}

// pullOnce загружает карточки из облака один раз за процесс (вход или старт watch).
// Ошибка только выводится.
func (c *Cli) pullOnce(ctx context.Context) {
	pulled, err := c.engine.PullOnLogin(ctx)
	if err != nil {
		c.io.Warn("Failed to import cards from cloud: %v", err)
		return
	}
	if !pulled {
		return
	}
	if notice := c.engine.CurrentState().Notice; notice != "" {
		c.io.Println(notice)
	}
}
