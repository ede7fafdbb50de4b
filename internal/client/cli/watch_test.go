package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/client/ingest"
	cardsync "github.com/iudanet/cardconnect/internal/client/sync"
	"github.com/iudanet/cardconnect/internal/models"
)

func TestCli_runWatch(t *testing.T) {
	tests := []struct {
		auth      func() *AuthServiceMock
		name      string
		wantPulls int
	}{
		{name: "signed in pulls on start", auth: signedInAuth, wantPulls: 1},
		{name: "signed out skips pull", auth: signedOutAuth, wantPulls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			mockIO, out := newTestIO()
			ingestor := &IngestorMock{
				ProcessFunc: func(ctx context.Context, image []byte) (*ingest.Report, error) {
					return &ingest.Report{
						Drafts: []models.CardDraft{{Name: "John Smith"}},
						Added:  []*models.Card{{ID: "card-1", Name: "John Smith", CompanyName: "Acme Corp"}},
					}, nil
				},
				WaitFunc: func() {},
			}
			engine := &SyncEngineMock{
				PullOnLoginFunc: func(ctx context.Context) (bool, error) {
					return true, nil
				},
				CurrentStateFunc: func() cardsync.State {
					return cardsync.State{Notice: "Imported 3 cards from cloud."}
				},
			}
			c := newTestCli(Deps{IO: mockIO, Auth: tt.auth(), Engine: engine, Ingest: ingestor})

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			go func() { done <- c.runWatch(ctx, dir) }()

			// watcher добавлен до первого вывода, поэтому ждем сообщения
			require.Eventually(t, func() bool {
				return len(mockIO.PrintfCalls()) > 0
			}, 2*time.Second, 10*time.Millisecond)

			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not an image"), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "card.jpg"), []byte("image bytes"), 0o600))

			assert.Eventually(t, func() bool {
				return len(ingestor.ProcessCalls()) == 1
			}, 3*time.Second, 20*time.Millisecond)

			cancel()
			select {
			case err := <-done:
				require.NoError(t, err)
			case <-time.After(3 * time.Second):
				t.Fatal("watch did not stop")
			}

			assert.Len(t, ingestor.ProcessCalls(), 1)
			assert.NotEmpty(t, ingestor.WaitCalls())
			assert.Contains(t, out.String(), "Added John Smith (Acme Corp) card-1")
			assert.Len(t, engine.PullOnLoginCalls(), tt.wantPulls)
			if tt.wantPulls > 0 {
				assert.Contains(t, out.String(), "Imported 3 cards from cloud.")
			} else {
				assert.NotContains(t, out.String(), "Imported")
			}
		})
	}
}

func TestCli_runWatch_PullFailureKeepsWatching(t *testing.T) {
	dir := t.TempDir()
	mockIO, out := newTestIO()
	engine := &SyncEngineMock{
		PullOnLoginFunc: func(ctx context.Context) (bool, error) {
			return false, errors.New("server down")
		},
	}
	c := newTestCli(Deps{IO: mockIO, Auth: signedInAuth(), Engine: engine, Ingest: &IngestorMock{WaitFunc: func() {}}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.runWatch(ctx, dir) }()

	require.Eventually(t, func() bool {
		return len(mockIO.PrintfCalls()) > 0
	}, 2*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Contains(t, out.String(), "WARN Failed to import cards from cloud: server down")
	assert.Empty(t, engine.CurrentStateCalls())
}

func TestCli_runWatch_MissingDir(t *testing.T) {
	mockIO, _ := newTestIO()
	c := newTestCli(Deps{IO: mockIO, Ingest: &IngestorMock{}})

	err := c.runWatch(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
