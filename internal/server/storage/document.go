package storage

import "context"

//go:generate moq -out document_mock.go . DocumentStorage

// DocumentStorage хранит JSON документы карточек, по коллекции на пользователя.
// Тело документа хранится как есть, сервер его не разбирает.
type DocumentStorage interface {
	// PutDocument создает или перезаписывает документ
	PutDocument(ctx context.Context, userID, cardID string, body []byte) error

	// ListDocuments возвращает все документы пользователя
	ListDocuments(ctx context.Context, userID string) ([][]byte, error)

	// DeleteDocument удаляет документ
	// Returns ErrDocumentNotFound if document doesn't exist
	DeleteDocument(ctx context.Context, userID, cardID string) error

	// DeleteCollection удаляет все документы пользователя и возвращает их количество
	DeleteCollection(ctx context.Context, userID string) (int, error)
}
