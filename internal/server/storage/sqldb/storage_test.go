package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardconnect/internal/models"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, ctx context.Context, s *Storage) string {
	t.Helper()

	userID := uuid.New().String()
	err := s.CreateUser(ctx, &models.User{
		ID:           userID,
		Username:     "user_" + userID[:8],
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	})
	require.NoError(t, err)

	return userID
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(context.Background(), "mysql", "dsn")
	assert.Error(t, err)
}

func TestNew_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/server.db"

	s, err := New(ctx, DriverSQLite, path)
	require.NoError(t, err)
	userID := createTestUser(t, ctx, s)
	require.NoError(t, s.Close())

	// повторное открытие не должно применять миграции заново
	s, err = New(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, err = s.GetUserByID(ctx, userID)
	assert.NoError(t, err)
	assert.NoError(t, s.Ping(ctx))
}

func TestStorage_Rebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{
			name:   "sqlite keeps placeholders",
			driver: DriverSQLite,
			query:  "SELECT * FROM users WHERE id = ? AND username = ?",
			want:   "SELECT * FROM users WHERE id = ? AND username = ?",
		},
		{
			name:   "postgres numbered placeholders",
			driver: DriverPostgres,
			query:  "SELECT * FROM users WHERE id = ? AND username = ?",
			want:   "SELECT * FROM users WHERE id = $1 AND username = $2",
		},
		{
			name:   "postgres without placeholders",
			driver: DriverPostgres,
			query:  "DELETE FROM users",
			want:   "DELETE FROM users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Storage{driver: tt.driver}
			assert.Equal(t, tt.want, s.rebind(tt.query))
		})
	}
}
