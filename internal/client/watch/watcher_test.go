package watch

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "card.jpg", want: true},
		{path: "CARD.JPEG", want: true},
		{path: "scan.png", want: true},
		{path: "photo.webp", want: true},
		{path: "notes.txt", want: false},
		{path: "archive", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsImage(tt.path))
		})
	}
}

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	var (
		mu        sync.Mutex
		processed []string
	)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(ctx context.Context, path string) error {
			mu.Lock()
			defer mu.Unlock()
			processed = append(processed, filepath.Base(path))
			return nil
		})
	}()

	imagePath := filepath.Join(dir, "card.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("part one"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	// повторная запись в тот же файл не должна приводить к повторной обработке
	f, err := os.OpenFile(imagePath, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(" part two")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(processed) == 1
	}, 5*time.Second, 20*time.Millisecond)

	// даем время на возможную лишнюю обработку
	time.Sleep(200 * time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"card.jpg"}, processed)
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}
