package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/validation"
)

// accountDeleteConfirmation нужно ввести, чтобы удалить аккаунт
const accountDeleteConfirmation = "DELETE"

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")

	username, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	username = validation.NormalizeAccount(username)
	if err := validation.ValidateAccount(username); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password != confirm {
		return errors.New("passwords do not match")
	}

	userID, err := c.auth.Register(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Success("Registered %s (user id %s).", username, userID)
	c.io.Println("Run 'cardconnect login' to sign in.")
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	username, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if username == "" || password == "" {
		return errors.New("email and password are required")
	}

	session, err := c.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	c.io.Success("Signed in as %s.", session.Username)

	// ошибка загрузки из облака не отменяет вход
	c.pullOnce(ctx)
	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Success("Signed out. Local cards are kept on this device.")
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	session, err := c.auth.Session(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		c.io.Println("Not signed in. Cards are stored on this device only.")
	case err != nil:
		return fmt.Errorf("failed to load session: %w", err)
	default:
		c.io.Printf("Signed in as: %s\n", session.Username)
		c.io.Printf("User ID:      %s\n", session.UserID)
		expiresAt := time.Unix(session.ExpiresAt, 0)
		if c.now().After(expiresAt) {
			c.io.Println("Access token: expired, refreshed on next sync")
		} else {
			c.io.Printf("Access token: valid until %s\n", expiresAt.Format(time.DateTime))
		}
	}

	cards, err := c.cards.ListCardSummaries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}
	unsynced := 0
	for _, card := range cards {
		if !card.IsSyncedToCloud {
			unsynced++
		}
	}
	c.io.Printf("Cards:        %d (%d not synced)\n", len(cards), unsynced)

	if err := c.engine.LoadState(ctx); err != nil {
		c.logger.WarnContext(ctx, "failed to load sync state", slog.Any("error", err))
	}
	state := c.engine.CurrentState()
	c.io.Printf("Last push:    %s\n", formatSyncTime(state.LastPushAt))
	c.io.Printf("Last pull:    %s\n", formatSyncTime(state.LastPullAt))
	return nil
}

func formatSyncTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Local().Format(time.DateTime)
}

func (c *Cli) runAccountDelete(ctx context.Context, yes bool) error {
	if !c.signedIn(ctx) {
		return errors.New("not signed in. Run 'cardconnect login' first")
	}

	if !yes {
		c.io.Warn("This permanently deletes your account and all your business cards, locally and in the cloud.")
		answer, err := c.io.ReadInput(fmt.Sprintf("Type %s to confirm: ", accountDeleteConfirmation))
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if strings.TrimSpace(answer) != accountDeleteConfirmation {
			c.io.Println("Cancelled.")
			return nil
		}
	}

	// Сначала облачные данные: при ошибке локальные карточки остаются
	if err := c.engine.DeleteAccountData(ctx); err != nil {
		return err
	}
	if err := c.auth.DeleteAccount(ctx); err != nil {
		return fmt.Errorf("cards deleted, but failed to delete account: %w", err)
	}

	c.io.Success("Account deleted.")
	return nil
}
