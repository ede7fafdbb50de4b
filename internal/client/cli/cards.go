package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/iudanet/cardconnect/internal/client/ingest"
	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/models"
)

type listOptions struct {
	Search string
	Since  string
}

// editableField - поле карточки, которое меняет команда edit
type editableField struct {
	flag  string
	usage string
	set   func(card *models.Card, value string)
}

var editableFields = []editableField{
	{flag: "name", usage: "Contact name", set: func(c *models.Card, v string) { c.Name = v }},
	{flag: "title", usage: "Job title", set: func(c *models.Card, v string) { c.Title = v }},
	{flag: "phone", usage: "Phone number", set: func(c *models.Card, v string) { c.Phone = v }},
	{flag: "email", usage: "Email address", set: func(c *models.Card, v string) { c.Email = v }},
	{flag: "website", usage: "Website", set: func(c *models.Card, v string) { c.Website = v }},
	{flag: "company", usage: "Company name", set: func(c *models.Card, v string) { c.CompanyName = v }},
	{flag: "department", usage: "Department", set: func(c *models.Card, v string) { c.Department = v }},
	{flag: "address", usage: "Postal address", set: func(c *models.Card, v string) { c.Address = v }},
	{flag: "industry", usage: "Industry tag", set: func(c *models.Card, v string) { c.Industry = v }},
}

func (c *Cli) runScan(ctx context.Context, paths []string) error {
	failed := 0
	for _, path := range paths {
		if err := c.scanFile(ctx, path); err != nil {
			c.io.Warn("%s: %v", path, err)
			failed++
		}
	}

	// фоновые отправки в облако должны завершиться до выхода
	c.ingest.Wait()

	if failed > 0 {
		return fmt.Errorf("%d of %d images failed", failed, len(paths))
	}
	return nil
}

// scanFile обрабатывает одно изображение и печатает итог
func (c *Cli) scanFile(ctx context.Context, path string) error {
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	report, err := c.ingest.Process(ctx, image)
	if err != nil {
		return err
	}
	c.printReport(path, report)
	return nil
}

func (c *Cli) printReport(path string, report *ingest.Report) {
	c.io.Printf("%s: %d card(s) found\n", path, len(report.Drafts))
	for _, card := range report.Added {
		c.io.Success("Added %s (%s) %s", displayName(card), card.CompanyName, card.ID)
	}
	for _, notice := range report.Notices {
		c.io.Warn("%s", notice)
	}
	if report.Failed > 0 {
		c.io.Warn("%d card(s) could not be saved", report.Failed)
	}
}

func (c *Cli) runList(ctx context.Context, opts listOptions) error {
	var since time.Time
	if opts.Since != "" {
		var err error
		since, err = parseSince(opts.Since, c.now())
		if err != nil {
			return err
		}
	}

	cards, err := c.cards.SearchCards(ctx, opts.Search)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	filtered := cards[:0]
	for _, card := range cards {
		if !since.IsZero() && card.CreatedAt.Before(since) {
			continue
		}
		filtered = append(filtered, card)
	}

	if len(filtered) == 0 {
		c.io.Println("No cards found.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCOMPANY\tINDUSTRY\tCREATED\tSYNCED")
	for _, card := range filtered {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			card.ID,
			displayName(card),
			card.CompanyName,
			card.Industry,
			card.CreatedAt.Local().Format("2006-01-02 15:04"),
			syncMark(card.IsSyncedToCloud))
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to print cards: %w", err)
	}
	c.io.Printf("\nTotal: %d\n", len(filtered))
	return nil
}

func (c *Cli) runShow(ctx context.Context, id string) error {
	card, err := c.getCard(ctx, id)
	if err != nil {
		return err
	}

	c.io.Printf("=== %s ===\n", displayName(card))
	rows := [][2]string{
		{"ID", card.ID},
		{"Title", card.Title},
		{"Company", card.CompanyName},
		{"Department", card.Department},
		{"Phone", card.Phone},
		{"Email", card.Email},
		{"Website", card.Website},
		{"Address", card.Address},
		{"Industry", card.Industry},
		{"Created", card.CreatedAt.Local().Format(time.DateTime)},
		{"Synced", syncMark(card.IsSyncedToCloud)},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		c.io.Printf("%-11s %s\n", row[0]+":", row[1])
	}
	if len(card.ImageData) > 0 {
		c.io.Printf("%-11s %d bytes\n", "Image:", len(card.ImageData))
	}

	c.io.Println()
	c.io.Println("About the company:")
	c.io.Println(card.CompanyDescription)
	c.io.Println()
	c.io.Println("About the role:")
	c.io.Println(card.PersonRoleDescription)
	return nil
}

func (c *Cli) runEdit(ctx context.Context, id string, changes map[string]string) error {
	if len(changes) == 0 {
		return errors.New("nothing to change, pass at least one field flag")
	}

	card, err := c.getCard(ctx, id)
	if err != nil {
		return err
	}

	for _, field := range editableFields {
		if value, ok := changes[field.flag]; ok {
			field.set(card, strings.TrimSpace(value))
		}
	}
	card.IsSyncedToCloud = false

	if err := c.cards.SaveCard(ctx, card); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}
	c.io.Success("Card %s updated.", card.ID)

	c.pushIfSignedIn(ctx, card)
	return nil
}

func (c *Cli) runEnrich(ctx context.Context, id string) error {
	card, err := c.ingest.Reenrich(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card %s not found", id)
		}
		return err
	}

	c.io.Success("Card %s enriched. Industry: %s", card.ID, card.Industry)
	c.pushIfSignedIn(ctx, card)
	return nil
}

func (c *Cli) runDelete(ctx context.Context, id string) error {
	if err := c.engine.DeleteCard(ctx, id); err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return fmt.Errorf("card %s not found", id)
		}
		return err
	}
	c.io.Success("Card %s deleted.", id)
	return nil
}

func (c *Cli) runStats(ctx context.Context) error {
	cards, err := c.cards.ListCardSummaries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}
	if len(cards) == 0 {
		c.io.Println("No cards yet.")
		return nil
	}

	tw := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "INDUSTRY\tCARDS")
	for _, stat := range IndustryStats(cards) {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", stat.Industry, stat.Count)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to print stats: %w", err)
	}
	return nil
}

// pushIfSignedIn отправляет измененную карточку; ошибка только сообщается
func (c *Cli) pushIfSignedIn(ctx context.Context, card *models.Card) {
	if !c.signedIn(ctx) {
		return
	}
	if err := c.engine.PushCard(ctx, card); err != nil {
		c.io.Warn("Saved locally, cloud sync failed: %v", err)
	}
}

func (c *Cli) getCard(ctx context.Context, id string) (*models.Card, error) {
	card, err := c.cards.GetCard(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrCardNotFound) {
			return nil, fmt.Errorf("card %s not found", id)
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

func displayName(card *models.Card) string {
	if card.Name == "" {
		return "(no name)"
	}
	return card.Name
}

func syncMark(synced bool) string {
	if synced {
		return "yes"
	}
	return "no"
}
