package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/pkg/api"
)

// TokenSource выдает действующий access token, обновляя его при необходимости
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// DocumentClient - транспорт к коллекции карточек пользователя на сервере
type DocumentClient struct {
	client *Client
	tokens TokenSource
}

var _ remote.DocumentStore = (*DocumentClient)(nil)

// NewDocumentClient создает транспорт документов поверх API клиента
func NewDocumentClient(client *Client, tokens TokenSource) *DocumentClient {
	return &DocumentClient{client: client, tokens: tokens}
}

// PutDocument записывает документ карточки
func (d *DocumentClient) PutDocument(ctx context.Context, userID, cardID string, body []byte) error {
	return d.do(ctx, http.MethodPut, cardsPath(userID, cardID), json.RawMessage(body), nil)
}

// DeleteDocument удаляет документ карточки; 404 считается успехом
func (d *DocumentClient) DeleteDocument(ctx context.Context, userID, cardID string) error {
	err := d.do(ctx, http.MethodDelete, cardsPath(userID, cardID), nil, nil)
	if IsStatus(err, http.StatusNotFound) {
		return nil
	}
	return err
}

// ListDocuments возвращает все документы пользователя
func (d *DocumentClient) ListDocuments(ctx context.Context, userID string) ([][]byte, error) {
	var resp api.CardListResponse
	if err := d.do(ctx, http.MethodGet, cardsPath(userID), nil, &resp); err != nil {
		return nil, err
	}

	docs := make([][]byte, 0, len(resp.Documents))
	for _, doc := range resp.Documents {
		docs = append(docs, []byte(doc))
	}
	return docs, nil
}

// DeleteCollection удаляет все документы пользователя
func (d *DocumentClient) DeleteCollection(ctx context.Context, userID string) error {
	return d.do(ctx, http.MethodDelete, cardsPath(userID), nil, nil)
}

// do выполняет запрос с токеном и переводит ошибки в ошибки remote
func (d *DocumentClient) do(ctx context.Context, method, path string, body, result any) error {
	token, err := d.tokens.AccessToken(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", remote.ErrNotAuthenticated, err)
	}

	err = d.client.doRequest(ctx, method, path, token, body, result)
	switch {
	case err == nil:
		return nil
	case IsStatus(err, http.StatusUnauthorized), IsStatus(err, http.StatusForbidden):
		return fmt.Errorf("%w: %w", remote.ErrNotAuthenticated, err)
	default:
		return fmt.Errorf("%w: %w", remote.ErrTransport, err)
	}
}
