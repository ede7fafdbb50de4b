package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/cardconnect/internal/server/storage"
)

// PutDocument создает или перезаписывает документ карточки
func (s *Storage) PutDocument(ctx context.Context, userID, cardID string, body []byte) error {
	query := `
		INSERT INTO card_documents (user_id, card_id, body, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, card_id) DO UPDATE SET
			body = excluded.body,
			updated_at = excluded.updated_at
	`

	if _, err := s.exec(ctx, query, userID, cardID, body, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to put document: %w", err)
	}
	return nil
}

// ListDocuments возвращает документы пользователя в порядке card_id
func (s *Storage) ListDocuments(ctx context.Context, userID string) ([][]byte, error) {
	rows, err := s.query(ctx, `SELECT body FROM card_documents WHERE user_id = ? ORDER BY card_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := make([][]byte, 0)
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, body)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return docs, nil
}

// DeleteDocument удаляет документ карточки
func (s *Storage) DeleteDocument(ctx context.Context, userID, cardID string) error {
	result, err := s.exec(ctx, `DELETE FROM card_documents WHERE user_id = ? AND card_id = ?`, userID, cardID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	return affected(result, storage.ErrDocumentNotFound)
}

// DeleteCollection удаляет все документы пользователя
func (s *Storage) DeleteCollection(ctx context.Context, userID string) (int, error) {
	result, err := s.exec(ctx, `DELETE FROM card_documents WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete collection: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return int(rows), nil
}
