package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSyncPush(ctx context.Context, unsyncedOnly bool) error {
	cards, err := c.cards.ListCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if unsyncedOnly {
		pending := cards[:0]
		for _, card := range cards {
			if !card.IsSyncedToCloud {
				pending = append(pending, card)
			}
		}
		cards = pending
	}

	if len(cards) == 0 {
		c.io.Println("Nothing to upload.")
		return nil
	}

	result, err := c.engine.PushAll(ctx, cards)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.Failed == 0 {
		c.io.Success("Synced %d cards, %d failed.", result.Synced, result.Failed)
		return nil
	}

	c.io.Warn("Synced %d cards, %d failed.", result.Synced, result.Failed)
	for _, itemErr := range result.Errors {
		c.io.Printf("  %s: %s\n", itemErr.CardID, itemErr.Message)
	}
	return nil
}

func (c *Cli) runSyncPull(ctx context.Context) error {
	local, err := c.cards.ListCardSummaries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	result, err := c.engine.PullMerge(ctx, local)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	c.io.Success("Imported %d cards from cloud.", result.Imported)
	c.io.Printf("Fetched %d, already present %d, failed %d\n", result.Fetched, result.Skipped, result.Failed)
	return nil
}
