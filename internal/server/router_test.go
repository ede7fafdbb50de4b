package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/cardconnect/internal/client/api"
	"github.com/iudanet/cardconnect/internal/client/auth"
	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage/boltdb"
	cardsync "github.com/iudanet/cardconnect/internal/client/sync"
	"github.com/iudanet/cardconnect/internal/imagecodec"
	"github.com/iudanet/cardconnect/internal/models"
	"github.com/iudanet/cardconnect/internal/server/handlers"
	"github.com/iudanet/cardconnect/internal/server/middleware"
	"github.com/iudanet/cardconnect/internal/server/storage/sqldb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) (*httptest.Server, *sqldb.Storage) {
	t.Helper()

	store, err := sqldb.New(context.Background(), sqldb.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler := NewRouter(Deps{
		Logger:      discardLogger(),
		Users:       store,
		Tokens:      store,
		Documents:   store,
		DB:          store,
		RateLimiter: limiter,
		Version:     "test",
		JWT: handlers.JWTConfig{
			Secret:          []byte("0123456789abcdef0123456789abcdef"),
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, store
}

// device - локальная сторона клиента: своя БД, своя сессия
type device struct {
	store  *boltdb.Storage
	auth   *auth.Service
	engine *cardsync.Engine
}

func newDevice(t *testing.T, serverURL string) *device {
	t.Helper()
	ctx := context.Background()
	logger := discardLogger()

	store, err := boltdb.New(ctx, filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	apiClient := clientapi.NewClient(serverURL)
	authService := auth.NewService(apiClient, store, logger)
	repo := remote.NewRepository(clientapi.NewDocumentClient(apiClient, authService), authService, imagecodec.Options{}, logger)
	engine := cardsync.NewEngine(repo, authService, store, store, nil, cardsync.Config{Workers: 2}, logger)

	return &device{store: store, auth: authService, engine: engine}
}

func TestRouter_Health(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/v1/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Content-Type"))
}

func TestRouter_CardsRequireToken(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{name: "list without token", method: http.MethodGet, path: "/api/v1/users/u1/cards"},
		{name: "put without token", method: http.MethodPut, path: "/api/v1/users/u1/cards/c1"},
		{name: "garbage token", method: http.MethodGet, path: "/api/v1/users/u1/cards", token: "not-a-jwt"},
		{name: "logout without token", method: http.MethodPost, path: "/api/v1/auth/logout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+tt.path, strings.NewReader(`{"id":"c1"}`))
			require.NoError(t, err)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute, discardLogger())
	t.Cleanup(limiter.Stop)
	srv, _ := newTestServer(t, limiter)

	codes := make([]int, 0, 3)
	for range 3 {
		resp, err := http.Get(srv.URL + "/api/v1/health")
		require.NoError(t, err)
		_ = resp.Body.Close()
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_SyncAcrossDevices(t *testing.T) {
	ctx := context.Background()
	srv, store := newTestServer(t, nil)

	laptop := newDevice(t, srv.URL)
	userID, err := laptop.auth.Register(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)
	_, err = laptop.auth.Login(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	card := &models.Card{
		ID:          "card-1",
		CreatedAt:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Name:        "John Smith",
		CompanyName: "Acme Corp",
		Industry:    "Manufacturing",
	}
	require.NoError(t, laptop.store.SaveCard(ctx, card))

	pushed, err := laptop.engine.PushAll(ctx, []*models.Card{card})
	require.NoError(t, err)
	assert.Equal(t, 1, pushed.Synced)
	assert.Zero(t, pushed.Failed)

	stored, err := laptop.store.GetCard(ctx, "card-1")
	require.NoError(t, err)
	assert.True(t, stored.IsSyncedToCloud)

	docs, err := store.ListDocuments(ctx, userID)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, string(docs[0]), `"companyName":"Acme Corp"`)

	// Второе устройство получает карточку при входе
	phone := newDevice(t, srv.URL)
	_, err = phone.auth.Login(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	ran, err := phone.engine.PullOnLogin(ctx)
	require.NoError(t, err)
	assert.True(t, ran)

	pulled, err := phone.store.GetCard(ctx, "card-1")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", pulled.Name)
	assert.True(t, pulled.IsSyncedToCloud)

	// Удаление на одном устройстве удаляет документ в облаке
	require.NoError(t, phone.engine.DeleteCard(ctx, "card-1"))
	docs, err = store.ListDocuments(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	// Чужой пользователь не видит коллекцию alice
	mallory := newDevice(t, srv.URL)
	_, err = mallory.auth.Register(ctx, "mallory@example.com", "correct-horse-battery")
	require.NoError(t, err)
	_, err = mallory.auth.Login(ctx, "mallory@example.com", "correct-horse-battery")
	require.NoError(t, err)
	token, err := mallory.auth.AccessToken(ctx)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/users/"+userID+"/cards", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	srv, store := newTestServer(t, nil)

	d := newDevice(t, srv.URL)
	userID, err := d.auth.Register(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)
	_, err = d.auth.Login(ctx, "alice@example.com", "correct-horse-battery")
	require.NoError(t, err)

	card := &models.Card{ID: "card-1", CreatedAt: time.Now().UTC(), Name: "John Smith"}
	require.NoError(t, d.store.SaveCard(ctx, card))
	_, err = d.engine.PushAll(ctx, []*models.Card{card})
	require.NoError(t, err)

	require.NoError(t, d.engine.DeleteAccountData(ctx))
	require.NoError(t, d.auth.DeleteAccount(ctx))

	docs, err := store.ListDocuments(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, docs)

	local, err := d.store.ListCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, local)

	_, ok := d.auth.CurrentUserID(ctx)
	assert.False(t, ok)

	_, err = d.auth.Login(ctx, "alice@example.com", "correct-horse-battery")
	assert.Error(t, err)
}
