package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/iudanet/cardconnect/internal/client/watch"
)

func (c *Cli) runWatch(ctx context.Context, dir string) error {
	w, err := watch.New(dir, c.settle, c.logger)
	if err != nil {
		return err
	}

	// долгая сессия: подтягиваем карточки с других устройств, как при входе
	if c.signedIn(ctx) {
		c.pullOnce(ctx)
	}

	c.io.Printf("Watching %s for new business card images. Press Ctrl+C to stop.\n", dir)

	err = w.Run(ctx, func(ctx context.Context, path string) error {
		if err := c.scanFile(ctx, path); err != nil {
			c.io.Warn("%s: %v", path, err)
			return err
		}
		return nil
	})
	c.ingest.Wait()
	if err != nil {
		return fmt.Errorf("watch stopped: %w", err)
	}

	c.logger.InfoContext(ctx, "watch stopped", slog.String("dir", dir))
	return nil
}
