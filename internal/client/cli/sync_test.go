package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage"
	cardsync "github.com/iudanet/cardconnect/internal/client/sync"
	"github.com/iudanet/cardconnect/internal/models"
)

func TestCli_runSyncPush(t *testing.T) {
	tests := []struct {
		name         string
		unsyncedOnly bool
		wantPushed   []string
	}{
		{name: "all cards", wantPushed: []string{"a", "b", "c"}},
		{name: "unsynced only", unsyncedOnly: true, wantPushed: []string{"b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockIO, out := newTestIO()
			cards := &storage.CardStorageMock{
				ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
					return []*models.Card{{ID: "a", IsSyncedToCloud: true}, {ID: "b"}, {ID: "c"}}, nil
				},
			}
			engine := &SyncEngineMock{
				PushAllFunc: func(ctx context.Context, cards []*models.Card) (*cardsync.PushResult, error) {
					return &cardsync.PushResult{
						Synced: len(cards) - 1,
						Failed: 1,
						Errors: []cardsync.ItemError{{CardID: "c", Message: "document store request failed"}},
					}, nil
				},
			}
			c := newTestCli(Deps{IO: mockIO, Engine: engine, Cards: cards})

			require.NoError(t, c.runSyncPush(context.Background(), tt.unsyncedOnly))

			require.Len(t, engine.PushAllCalls(), 1)
			var pushed []string
			for _, card := range engine.PushAllCalls()[0].Cards {
				pushed = append(pushed, card.ID)
			}
			assert.Equal(t, tt.wantPushed, pushed)
			assert.Contains(t, out.String(), "failed.")
			assert.Contains(t, out.String(), "c: document store request failed")
		})
	}
}

func TestCli_runSyncPush_NotAuthenticated(t *testing.T) {
	mockIO, _ := newTestIO()
	cards := &storage.CardStorageMock{
		ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
			return []*models.Card{{ID: "a"}}, nil
		},
	}
	engine := &SyncEngineMock{
		PushAllFunc: func(ctx context.Context, cards []*models.Card) (*cardsync.PushResult, error) {
			return nil, remote.ErrNotAuthenticated
		},
	}
	c := newTestCli(Deps{IO: mockIO, Engine: engine, Cards: cards})

	err := c.runSyncPush(context.Background(), false)
	assert.ErrorIs(t, err, remote.ErrNotAuthenticated)
}

func TestCli_runSyncPush_NothingToUpload(t *testing.T) {
	mockIO, out := newTestIO()
	cards := &storage.CardStorageMock{
		ListCardsFunc: func(ctx context.Context) ([]*models.Card, error) {
			return []*models.Card{{ID: "a", IsSyncedToCloud: true}}, nil
		},
	}
	engine := &SyncEngineMock{}
	c := newTestCli(Deps{IO: mockIO, Engine: engine, Cards: cards})

	require.NoError(t, c.runSyncPush(context.Background(), true))
	assert.Empty(t, engine.PushAllCalls())
	assert.Contains(t, out.String(), "Nothing to upload.")
}

func TestCli_runSyncPull(t *testing.T) {
	local := []*models.Card{{ID: "a"}}
	cards := &storage.CardStorageMock{
		ListCardSummariesFunc: func(ctx context.Context) ([]*models.Card, error) {
			return local, nil
		},
	}

	t.Run("imported", func(t *testing.T) {
		mockIO, out := newTestIO()
		engine := &SyncEngineMock{
			PullMergeFunc: func(ctx context.Context, localCards []*models.Card) (*cardsync.PullResult, error) {
				return &cardsync.PullResult{Fetched: 3, Imported: 2, Skipped: 1}, nil
			},
		}
		c := newTestCli(Deps{IO: mockIO, Engine: engine, Cards: cards})

		require.NoError(t, c.runSyncPull(context.Background()))
		require.Len(t, engine.PullMergeCalls(), 1)
		assert.Equal(t, local, engine.PullMergeCalls()[0].LocalCards)
		assert.Contains(t, out.String(), "Imported 2 cards from cloud.")
		assert.Contains(t, out.String(), "Fetched 3, already present 1, failed 0")
	})

	t.Run("fetch failure", func(t *testing.T) {
		mockIO, _ := newTestIO()
		engine := &SyncEngineMock{
			PullMergeFunc: func(ctx context.Context, localCards []*models.Card) (*cardsync.PullResult, error) {
				return nil, errors.New("failed to fetch cards: boom")
			},
		}
		c := newTestCli(Deps{IO: mockIO, Engine: engine, Cards: cards})

		assert.Error(t, c.runSyncPull(context.Background()))
	})
}
