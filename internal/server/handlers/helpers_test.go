package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/cardconnect/internal/models"
	"github.com/iudanet/cardconnect/internal/server/storage"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:          []byte(testSecret),
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
	}
}

// memoryStores - моки хранилищ поверх общих map
type memoryStores struct {
	users  *storage.UserStorageMock
	tokens *storage.TokenStorageMock
	docs   *storage.DocumentStorageMock

	mu        sync.Mutex
	userByID  map[string]*models.User
	tokenByID map[string]*models.RefreshToken
	docByKey  map[string]map[string][]byte
}

func newMemoryStores() *memoryStores {
	m := &memoryStores{
		userByID:  make(map[string]*models.User),
		tokenByID: make(map[string]*models.RefreshToken),
		docByKey:  make(map[string]map[string][]byte),
	}

	m.users = &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			for _, u := range m.userByID {
				if u.Username == user.Username {
					return storage.ErrUserAlreadyExists
				}
			}
			cp := *user
			m.userByID[user.ID] = &cp
			return nil
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			for _, u := range m.userByID {
				if u.Username == username {
					cp := *u
					return &cp, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			u, ok := m.userByID[userID]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			cp := *u
			return &cp, nil
		},
		DeleteUserFunc: func(ctx context.Context, userID string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.userByID[userID]; !ok {
				return storage.ErrUserNotFound
			}
			delete(m.userByID, userID)
			return nil
		},
		UpdateLastLoginFunc: func(ctx context.Context, userID string, lastLogin time.Time) error {
			return nil
		},
	}

	m.tokens = &storage.TokenStorageMock{
		SaveRefreshTokenFunc: func(ctx context.Context, token *models.RefreshToken) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			cp := *token
			m.tokenByID[token.TokenHash] = &cp
			return nil
		},
		GetRefreshTokenFunc: func(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			tok, ok := m.tokenByID[tokenHash]
			if !ok {
				return nil, storage.ErrTokenNotFound
			}
			cp := *tok
			return &cp, nil
		},
		DeleteRefreshTokenFunc: func(ctx context.Context, tokenHash string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.tokenByID[tokenHash]; !ok {
				return storage.ErrTokenNotFound
			}
			delete(m.tokenByID, tokenHash)
			return nil
		},
		DeleteUserTokensFunc: func(ctx context.Context, userID string) (int, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			n := 0
			for hash, tok := range m.tokenByID {
				if tok.UserID == userID {
					delete(m.tokenByID, hash)
					n++
				}
			}
			return n, nil
		},
		DeleteExpiredTokensFunc: func(ctx context.Context, now time.Time) (int, error) {
			return 0, nil
		},
	}

	m.docs = &storage.DocumentStorageMock{
		PutDocumentFunc: func(ctx context.Context, userID, cardID string, body []byte) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if m.docByKey[userID] == nil {
				m.docByKey[userID] = make(map[string][]byte)
			}
			m.docByKey[userID][cardID] = append([]byte(nil), body...)
			return nil
		},
		ListDocumentsFunc: func(ctx context.Context, userID string) ([][]byte, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			docs := make([][]byte, 0)
			for _, body := range m.docByKey[userID] {
				docs = append(docs, body)
			}
			return docs, nil
		},
		DeleteDocumentFunc: func(ctx context.Context, userID, cardID string) error {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.docByKey[userID][cardID]; !ok {
				return storage.ErrDocumentNotFound
			}
			delete(m.docByKey[userID], cardID)
			return nil
		},
		DeleteCollectionFunc: func(ctx context.Context, userID string) (int, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			n := len(m.docByKey[userID])
			delete(m.docByKey, userID)
			return n, nil
		},
	}

	return m
}

func (m *memoryStores) tokenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tokenByID)
}
