package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/cardconnect/internal/server/storage"
	"github.com/iudanet/cardconnect/pkg/api"
)

// DefaultMaxDocumentBytes - предел размера документа карточки
const DefaultMaxDocumentBytes = 1_000_000

// CardsHandler обслуживает коллекцию users/{userID}/cards
type CardsHandler struct {
	logger   *slog.Logger
	docs     storage.DocumentStorage
	maxBytes int64
}

// NewCardsHandler создает handler коллекции карточек
func NewCardsHandler(logger *slog.Logger, docs storage.DocumentStorage, maxBytes int64) *CardsHandler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDocumentBytes
	}
	return &CardsHandler{logger: logger, docs: docs, maxBytes: maxBytes}
}

// ownerID возвращает userID из пути, если он совпадает с владельцем токена
func (h *CardsHandler) ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	tokenUserID, ok := GetUserID(r.Context())
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	pathUserID := chi.URLParam(r, "userID")
	if pathUserID != tokenUserID {
		h.logger.WarnContext(r.Context(), "access to foreign collection denied",
			slog.String("user_id", tokenUserID),
			slog.String("path_user_id", pathUserID))
		sendError(h.logger, w, "access denied", http.StatusForbidden)
		return "", false
	}
	return tokenUserID, true
}

// List обрабатывает GET /api/v1/users/{userID}/cards
func (h *CardsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	docs, err := h.docs.ListDocuments(r.Context(), userID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list documents", slog.String("user_id", userID), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CardListResponse{Documents: make([]json.RawMessage, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, json.RawMessage(doc))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Put обрабатывает PUT /api/v1/users/{userID}/cards/{cardID}
// Документ перезаписывается целиком
func (h *CardsHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	cardID := chi.URLParam(r, "cardID")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.WarnContext(ctx, "document too large",
				slog.String("user_id", userID),
				slog.String("card_id", cardID),
				slog.Int64("limit", maxErr.Limit))
			sendError(h.logger, w, "document too large", http.StatusRequestEntityTooLarge)
			return
		}
		sendError(h.logger, w, "failed to read request body", http.StatusBadRequest)
		return
	}

	// Сервер проверяет только JSON и совпадение id, остальное хранит как есть
	var header struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &header); err != nil {
		sendError(h.logger, w, "invalid document", http.StatusBadRequest)
		return
	}
	if header.ID != cardID {
		sendError(h.logger, w, "document id does not match path", http.StatusBadRequest)
		return
	}

	if err := h.docs.PutDocument(ctx, userID, cardID, body); err != nil {
		h.logger.ErrorContext(ctx, "failed to put document", slog.String("card_id", cardID), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.DebugContext(ctx, "document stored", slog.String("user_id", userID), slog.String("card_id", cardID), slog.Int("bytes", len(body)))
	w.WriteHeader(http.StatusNoContent)
}

// Delete обрабатывает DELETE /api/v1/users/{userID}/cards/{cardID}
func (h *CardsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	cardID := chi.URLParam(r, "cardID")

	if err := h.docs.DeleteDocument(ctx, userID, cardID); err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			sendError(h.logger, w, "document not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete document", slog.String("card_id", cardID), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteCollection обрабатывает DELETE /api/v1/users/{userID}/cards
func (h *CardsHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	deleted, err := h.docs.DeleteCollection(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete collection", slog.String("user_id", userID), slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "collection deleted", slog.String("user_id", userID), slog.Int("documents_deleted", deleted))
	w.WriteHeader(http.StatusNoContent)
}
