// Package remote maps local cards to documents of the per-user cloud
// collection users/{uid}/cards/{cardId}.
package remote

import (
	"context"
	"errors"
)

var (
	// ErrNotAuthenticated - нет текущего пользователя, обращение к облаку невозможно
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrDecode - документ из облака не удалось разобрать в карточку
	ErrDecode = errors.New("failed to decode card document")

	// ErrTransport - вызов хранилища документов завершился ошибкой
	ErrTransport = errors.New("document store request failed")
)

//go:generate moq -out remote_mock.go . DocumentStore IdentityProvider

// DocumentStore - транспорт к коллекции документов пользователя.
// Реализации оборачивают сетевые ошибки в ErrTransport.
type DocumentStore interface {
	// PutDocument записывает документ, перезаписывая существующий
	PutDocument(ctx context.Context, userID, cardID string, body []byte) error

	// DeleteDocument удаляет документ; отсутствие документа не ошибка
	DeleteDocument(ctx context.Context, userID, cardID string) error

	// ListDocuments возвращает тела всех документов коллекции
	ListDocuments(ctx context.Context, userID string) ([][]byte, error)

	// DeleteCollection удаляет все документы пользователя
	DeleteCollection(ctx context.Context, userID string) error
}

// IdentityProvider возвращает uid текущего пользователя, если он вошел в систему
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (string, bool)
}
