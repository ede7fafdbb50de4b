// Package watch следит за входящей папкой и передает новые изображения
// визиток на обработку.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettle - сколько файл должен не меняться, прежде чем его обработать
const DefaultSettle = 500 * time.Millisecond

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsImage проверяет расширение файла
func IsImage(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// Handler обрабатывает одно изображение из папки
type Handler func(ctx context.Context, path string) error

// Watcher следит за папкой и вызывает Handler для каждого нового изображения
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	dir     string
	settle  time.Duration

	mu      sync.Mutex
	pending map[string]*time.Timer
	seen    map[string]bool
	wg      sync.WaitGroup
	stopped bool
}

// New начинает наблюдение за dir. События копятся до вызова Run.
func New(dir string, settle time.Duration, logger *slog.Logger) (*Watcher, error) {
	if settle <= 0 {
		settle = DefaultSettle
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}

	return &Watcher{
		watcher: fw,
		logger:  logger,
		dir:     dir,
		settle:  settle,
		pending: make(map[string]*time.Timer),
		seen:    make(map[string]bool),
	}, nil
}

// Run обрабатывает события, пока не отменен ctx. Каждый файл передается
// в handler один раз, после того как запись в него завершилась.
// Ошибка handler логируется и не останавливает наблюдение.
func (w *Watcher) Run(ctx context.Context, handler Handler) error {
	defer func() {
		w.stopTimers()
		w.wg.Wait()
		_ = w.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !IsImage(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name, handler)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "watcher error", slog.String("dir", w.dir), slog.Any("error", err))
		}
	}
}

// schedule откладывает обработку, пока файл продолжает меняться
func (w *Watcher) schedule(ctx context.Context, path string, handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped || w.seen[path] {
		return
	}
	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.settle)
		return
	}

	w.pending[path] = time.AfterFunc(w.settle, func() {
		w.mu.Lock()
		delete(w.pending, path)
		if w.stopped || w.seen[path] || ctx.Err() != nil {
			w.mu.Unlock()
			return
		}
		w.seen[path] = true
		w.wg.Add(1)
		w.mu.Unlock()

		defer w.wg.Done()
		if err := handler(ctx, path); err != nil {
			w.logger.ErrorContext(ctx, "failed to process file", slog.String("path", path), slog.Any("error", err))
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	for path, timer := range w.pending {
		timer.Stop()
		delete(w.pending, path)
	}
}
