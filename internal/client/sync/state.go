package sync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/iudanet/cardconnect/internal/client/storage"
)

// State - наблюдаемое состояние синхронизации
type State struct {
	LastPushAt   time.Time
	LastPullAt   time.Time
	ErrorMessage string // последняя ошибка операции целиком
	Notice       string // последнее сообщение для пользователя
	Syncing      bool
}

// Session хранит флаг "загрузка из облака в этой сессии уже выполнялась"
type Session struct {
	pulled atomic.Bool
}

// NewSession создает новую сессию
func NewSession() *Session {
	return &Session{}
}

// TryBegin атомарно выставляет флаг и возвращает true только первому вызову
func (s *Session) TryBegin() bool {
	return s.pulled.CompareAndSwap(false, true)
}

// HasPulled сообщает, выполнялась ли загрузка в этой сессии
func (s *Session) HasPulled() bool {
	return s.pulled.Load()
}

// LoadState восстанавливает время последних синхронизаций из хранилища
func (e *Engine) LoadState(ctx context.Context) error {
	pushAt, err := e.metadata.GetLastSyncTime(ctx, storage.SyncKindPush)
	if err != nil {
		return fmt.Errorf("failed to load last push time: %w", err)
	}
	pullAt, err := e.metadata.GetLastSyncTime(ctx, storage.SyncKindPull)
	if err != nil {
		return fmt.Errorf("failed to load last pull time: %w", err)
	}

	e.update(func(s *State) {
		s.LastPushAt = pushAt
		s.LastPullAt = pullAt
	})
	return nil
}

// CurrentState возвращает копию текущего состояния
func (e *Engine) CurrentState() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe регистрирует наблюдателя, который вызывается после каждого
// изменения состояния. Возвращает функцию отписки.
func (e *Engine) Subscribe(fn func(State)) func() {
	e.mu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		delete(e.subscribers, id)
		e.mu.Unlock()
	}
}

// update применяет изменение и уведомляет наблюдателей вне блокировки
func (e *Engine) update(mutate func(s *State)) {
	e.mu.Lock()
	mutate(&e.state)
	e.state.Syncing = e.active > 0
	snapshot := e.state
	subs := make([]func(State), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		subs = append(subs, fn)
	}
	e.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

func (e *Engine) begin() {
	e.mu.Lock()
	e.active++
	e.mu.Unlock()
	e.update(func(s *State) {})
}

func (e *Engine) finish(mutate func(s *State)) {
	e.mu.Lock()
	e.active--
	e.mu.Unlock()
	e.update(mutate)
}

func (e *Engine) fail(err error) {
	e.update(func(s *State) {
		s.ErrorMessage = err.Error()
	})
}
