package sync

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	gosync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/client/storage/boltdb"
	"github.com/iudanet/cardconnect/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestStore(t *testing.T) *boltdb.Storage {
	t.Helper()

	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func loggedIn(userID string) *remote.IdentityProviderMock {
	return &remote.IdentityProviderMock{
		CurrentUserIDFunc: func(ctx context.Context) (string, bool) {
			return userID, userID != ""
		},
	}
}

// memoryRemote - облачная коллекция в памяти
type memoryRemote struct {
	cards map[string]*models.Card
	mu    gosync.Mutex
}

func newMemoryRemote(cards ...*models.Card) (*RemoteRepositoryMock, *memoryRemote) {
	m := &memoryRemote{cards: map[string]*models.Card{}}
	for _, c := range cards {
		m.cards[c.ID] = c
	}

	return &RemoteRepositoryMock{
		PutFunc: func(ctx context.Context, card *models.Card) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			cp := *card
			m.cards[card.ID] = &cp
			return nil
		},
		DeleteFunc: func(ctx context.Context, id string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.cards, id)
			return nil
		},
		ListAllFunc: func(ctx context.Context) ([]*models.Card, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			var out []*models.Card
			for _, c := range m.cards {
				cp := *c
				out = append(out, &cp)
			}
			return out, nil
		},
		DeleteAllForUserFunc: func(ctx context.Context) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.cards = map[string]*models.Card{}
			return nil
		},
	}, m
}

func newTestEngine(t *testing.T, repo RemoteRepository, identity remote.IdentityProvider, workers int) (*Engine, *boltdb.Storage) {
	t.Helper()

	store := createTestStore(t)
	e := NewEngine(repo, identity, store, store, NewSession(), Config{Workers: workers}, testLogger())
	return e, store
}

func seedCards(t *testing.T, store storage.CardStorage, n int) []*models.Card {
	t.Helper()

	var cards []*models.Card
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		card := &models.Card{
			ID:        fmt.Sprintf("card-%d", i),
			Name:      fmt.Sprintf("Person %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.SaveCard(context.Background(), card))
		cards = append(cards, card)
	}
	return cards
}

func TestEngine_PushAll_PerItemIsolation(t *testing.T) {
	for _, workers := range []int{1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			ctx := context.Background()
			repo, cloud := newMemoryRemote()
			basePut := repo.PutFunc
			repo.PutFunc = func(ctx context.Context, card *models.Card) error {
				if card.ID == "card-2" {
					return fmt.Errorf("put card-2: %w", remote.ErrTransport)
				}
				return basePut(ctx, card)
			}

			e, store := newTestEngine(t, repo, loggedIn("uid"), workers)
			cards := seedCards(t, store, 5)

			result, err := e.PushAll(ctx, cards)
			require.NoError(t, err)
			assert.Equal(t, 4, result.Synced)
			assert.Equal(t, 1, result.Failed)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, "card-2", result.Errors[0].CardID)
			assert.Contains(t, result.Errors[0].Message, "document store request failed")

			local, err := store.ListCards(ctx)
			require.NoError(t, err)
			for _, c := range local {
				assert.Equal(t, c.ID != "card-2", c.IsSyncedToCloud, c.ID)
			}
			assert.Len(t, cloud.cards, 4)
			assert.Len(t, repo.PutCalls(), 5)

			state := e.CurrentState()
			assert.False(t, state.Syncing)
			assert.False(t, state.LastPushAt.IsZero())
			assert.Equal(t, "Synced 4 cards, 1 failed.", state.Notice)
		})
	}
}

func TestEngine_PushAll_MarkSyncedFailureCountsAsFailed(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRemote()
	store := createTestStore(t)
	cards := seedCards(t, store, 2)

	cardsMock := &storage.CardStorageMock{
		MarkSyncedFunc: func(ctx context.Context, id string, synced bool) error {
			if id == "card-0" {
				return errors.New("disk full")
			}
			return store.MarkSynced(ctx, id, synced)
		},
	}
	e := NewEngine(repo, loggedIn("uid"), cardsMock, store, nil, Config{}, testLogger())

	result, err := e.PushAll(ctx, cards)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Synced)
	assert.Equal(t, 1, result.Failed)
	assert.Len(t, cardsMock.MarkSyncedCalls(), 2)
}

func TestEngine_PushAll_NotAuthenticated(t *testing.T) {
	repo, _ := newMemoryRemote()
	e, store := newTestEngine(t, repo, loggedIn(""), 1)
	cards := seedCards(t, store, 1)

	result, err := e.PushAll(context.Background(), cards)
	assert.ErrorIs(t, err, remote.ErrNotAuthenticated)
	assert.Nil(t, result)
	assert.Empty(t, repo.PutCalls())
	assert.Equal(t, remote.ErrNotAuthenticated.Error(), e.CurrentState().ErrorMessage)
}

func TestEngine_PushAll_PersistsLastPushTime(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRemote()
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)

	fixed := time.Date(2025, 2, 2, 2, 2, 2, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	_, err := e.PushAll(ctx, nil)
	require.NoError(t, err)

	at, err := store.GetLastSyncTime(ctx, storage.SyncKindPush)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(at))

	// Новый движок восстанавливает время из хранилища
	restored := NewEngine(repo, loggedIn("uid"), store, store, nil, Config{}, testLogger())
	require.NoError(t, restored.LoadState(ctx))
	assert.True(t, fixed.Equal(restored.CurrentState().LastPushAt))
}

func TestEngine_PullMerge_ImportsMissing(t *testing.T) {
	ctx := context.Background()
	a := &models.Card{ID: "A", Name: "Alice", CreatedAt: time.Now()}
	b := &models.Card{ID: "B", Name: "Bob", CreatedAt: time.Now()}
	repo, _ := newMemoryRemote(a, b)

	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)

	result, err := e.PullMerge(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, &PullResult{Fetched: 2, Imported: 2}, result)

	local, err := store.ListCards(ctx)
	require.NoError(t, err)
	require.Len(t, local, 2)
	for _, c := range local {
		assert.True(t, c.IsSyncedToCloud, c.ID)
	}
}

func TestEngine_PullMerge_NeverOverwritesLocal(t *testing.T) {
	ctx := context.Background()
	remoteA := &models.Card{ID: "A", Name: "Cloud Alice"}
	remoteC := &models.Card{ID: "C", Name: "Cloud Carol"}
	repo, _ := newMemoryRemote(remoteA, remoteC)

	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)
	localA := &models.Card{ID: "A", Name: "Local Alice"}
	require.NoError(t, store.SaveCard(ctx, localA))

	tests := []struct {
		name  string
		local []*models.Card
	}{
		{name: "local set passed in", local: []*models.Card{localA}},
		{name: "stale local set", local: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.PullMerge(ctx, tt.local)
			require.NoError(t, err)

			got, err := store.GetCard(ctx, "A")
			require.NoError(t, err)
			assert.Equal(t, "Local Alice", got.Name)
			assert.False(t, got.IsSyncedToCloud)
		})
	}

	got, err := store.GetCard(ctx, "C")
	require.NoError(t, err)
	assert.Equal(t, "Cloud Carol", got.Name)
}

func TestEngine_PullMerge_ListFailure(t *testing.T) {
	repo := &RemoteRepositoryMock{
		ListAllFunc: func(ctx context.Context) ([]*models.Card, error) {
			return nil, remote.ErrTransport
		},
	}
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)

	result, err := e.PullMerge(context.Background(), nil)
	assert.ErrorIs(t, err, remote.ErrTransport)
	assert.Nil(t, result)

	state := e.CurrentState()
	assert.NotEmpty(t, state.ErrorMessage)
	assert.False(t, state.Syncing)

	local, err := store.ListCards(context.Background())
	require.NoError(t, err)
	assert.Empty(t, local)
}

func TestEngine_PullMerge_NotAuthenticated(t *testing.T) {
	repo, _ := newMemoryRemote(&models.Card{ID: "A"})
	e, _ := newTestEngine(t, repo, loggedIn(""), 1)

	_, err := e.PullMerge(context.Background(), nil)
	assert.ErrorIs(t, err, remote.ErrNotAuthenticated)
	assert.Empty(t, repo.ListAllCalls())
}

func TestEngine_PullOnLogin_OncePerSession(t *testing.T) {
	ctx := context.Background()
	repo, _ := newMemoryRemote(&models.Card{ID: "A"}, &models.Card{ID: "B"})
	store := createTestStore(t)
	session := NewSession()
	e := NewEngine(repo, loggedIn("uid"), store, store, session, Config{Workers: 1}, testLogger())
	assert.False(t, session.HasPulled())

	const callers = 8
	var wg gosync.WaitGroup
	results := make([]bool, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ran, err := e.PullOnLogin(ctx)
			assert.NoError(t, err)
			results[i] = ran
		}(i)
	}
	wg.Wait()

	ran := 0
	for _, r := range results {
		if r {
			ran++
		}
	}
	assert.Equal(t, 1, ran)
	assert.Len(t, repo.ListAllCalls(), 1)

	local, err := store.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 2)

	assert.True(t, session.HasPulled())

	// флаг живет до перезапуска: повторный вход в том же процессе не загружает
	again, err := e.PullOnLogin(ctx)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Len(t, repo.ListAllCalls(), 1)

	// новый процесс - новая сессия
	restarted := NewEngine(repo, loggedIn("uid"), store, store, NewSession(), Config{Workers: 1}, testLogger())
	again, err = restarted.PullOnLogin(ctx)
	require.NoError(t, err)
	assert.True(t, again)
	assert.Len(t, repo.ListAllCalls(), 2)
}

func TestEngine_DeleteCard(t *testing.T) {
	ctx := context.Background()
	repo, cloud := newMemoryRemote()
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)
	cards := seedCards(t, store, 2)

	_, err := e.PushAll(ctx, cards)
	require.NoError(t, err)

	require.NoError(t, e.DeleteCard(ctx, "card-0"))

	_, err = store.GetCard(ctx, "card-0")
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
	assert.NotContains(t, cloud.cards, "card-0")
	assert.Contains(t, cloud.cards, "card-1")
}

func TestEngine_DeleteCard_RemoteFailureIgnored(t *testing.T) {
	ctx := context.Background()
	repo := &RemoteRepositoryMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			return remote.ErrTransport
		},
	}
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)
	seedCards(t, store, 1)

	require.NoError(t, e.DeleteCard(ctx, "card-0"))
	assert.Len(t, repo.DeleteCalls(), 1)

	_, err := store.GetCard(ctx, "card-0")
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

func TestEngine_DeleteCard_NotAuthenticatedSkipsRemote(t *testing.T) {
	repo := &RemoteRepositoryMock{}
	e, store := newTestEngine(t, repo, loggedIn(""), 1)
	seedCards(t, store, 1)

	require.NoError(t, e.DeleteCard(context.Background(), "card-0"))
	assert.Empty(t, repo.DeleteCalls())
}

func TestEngine_DeleteAccountData(t *testing.T) {
	ctx := context.Background()
	repo, cloud := newMemoryRemote(&models.Card{ID: "X"})
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)
	seedCards(t, store, 3)

	require.NoError(t, e.DeleteAccountData(ctx))

	assert.Empty(t, cloud.cards)
	local, err := store.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, local)
}

func TestEngine_DeleteAccountData_RemoteFailureKeepsLocal(t *testing.T) {
	ctx := context.Background()
	repo := &RemoteRepositoryMock{
		DeleteAllForUserFunc: func(ctx context.Context) error {
			return remote.ErrTransport
		},
	}
	e, store := newTestEngine(t, repo, loggedIn("uid"), 1)
	seedCards(t, store, 2)

	err := e.DeleteAccountData(ctx)
	assert.ErrorIs(t, err, remote.ErrTransport)

	local, err := store.ListCards(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 2)
	assert.NotEmpty(t, e.CurrentState().ErrorMessage)
}

func TestEngine_Subscribe(t *testing.T) {
	repo, _ := newMemoryRemote(&models.Card{ID: "A"})
	e, _ := newTestEngine(t, repo, loggedIn("uid"), 1)

	var mu gosync.Mutex
	var states []State
	unsubscribe := e.Subscribe(func(s State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	_, err := e.PullMerge(context.Background(), nil)
	require.NoError(t, err)

	mu.Lock()
	require.GreaterOrEqual(t, len(states), 2)
	assert.True(t, states[0].Syncing)
	last := states[len(states)-1]
	mu.Unlock()

	assert.False(t, last.Syncing)
	assert.Equal(t, "Imported 1 cards from cloud.", last.Notice)

	unsubscribe()
	count := len(states)
	_, err = e.PullMerge(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, states, count)
}
