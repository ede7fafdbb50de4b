package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/iudanet/cardconnect/internal/models"
)

const (
	// DefaultModel используется, если модель не задана в конфигурации
	DefaultModel = "claude-sonnet-4-5"

	extractMaxTokens = 2048
	enrichMaxTokens  = 2048
)

const extractPrompt = `Analyze this image. It may contain one or more business cards.
For each business card found, extract: name, title, phone, email, website,
company name, department and address.

Return a JSON array of objects with the keys: name, title, phone, email, website,
companyName, department, address. Omit missing fields or use null.
Return only the raw JSON, without markdown code fences.`

const enrichPromptTemplate = `You are a sales analyst who connects industry supply and demand.

Business card:
Company: %s
Title: %s
Department: %s
Address: %s
Website: %s

Write a concise analysis:
1. industry: a short industry tag.
2. companyDescription: what the company does.
3. roleDescription: a Markdown report covering what the company likely sells and buys,
   why this contact is worth connecting with, and which roles to reach out to.

Return a strictly valid JSON object with the keys "companyDescription",
"roleDescription" and "industry". Return only the raw JSON, without markdown code fences.`

// Client реализует Extractor и Enricher поверх Anthropic Messages API
type Client struct {
	api    anthropic.Client
	logger *slog.Logger
	model  string
}

var (
	_ Extractor = (*Client)(nil)
	_ Enricher  = (*Client)(nil)
)

// NewClient создает клиента модели. opts позволяют переопределить транспорт (base URL в тестах).
func NewClient(apiKey, model string, logger *slog.Logger, opts ...option.RequestOption) *Client {
	if model == "" {
		model = DefaultModel
	}

	reqOpts := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{
		api:    anthropic.NewClient(reqOpts...),
		model:  model,
		logger: logger,
	}
}

// Extract распознает карточки на изображении
func (c *Client) Extract(ctx context.Context, image []byte, mediaType string) ([]models.CardDraft, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrModel)
	}

	text, err := c.complete(ctx, extractMaxTokens,
		anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(image)),
		anthropic.NewTextBlock(extractPrompt),
	)
	if err != nil {
		c.logger.ErrorContext(ctx, "card extraction failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", ErrModel, err)
	}

	drafts, err := ParseDrafts(text)
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to parse extraction response", slog.Any("error", err))
		return nil, err
	}

	c.logger.DebugContext(ctx, "extracted drafts", slog.Int("count", len(drafts)))
	return drafts, nil
}

// Enrich генерирует описания компании и роли
func (c *Client) Enrich(ctx context.Context, draft models.CardDraft) models.Enrichment {
	prompt := fmt.Sprintf(enrichPromptTemplate,
		orUnknown(draft.CompanyName),
		orUnknown(draft.Title),
		orUnknown(draft.Department),
		draft.Address,
		draft.Website,
	)

	text, err := c.complete(ctx, enrichMaxTokens, anthropic.NewTextBlock(prompt))
	if err != nil {
		c.logger.WarnContext(ctx, "enrichment failed", slog.Any("error", err))
		return models.FallbackEnrichment()
	}

	return ParseEnrichment(text)
}

// complete отправляет одно сообщение пользователя и склеивает текстовые блоки ответа
func (c *Client) complete(ctx context.Context, maxTokens int64, blocks ...anthropic.ContentBlockParamUnion) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func orUnknown(s string) string {
	if s == "" {
		return models.FallbackIndustry
	}
	return s
}
