package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/cardconnect/internal/client/remote"
	"github.com/iudanet/cardconnect/internal/client/storage"
	"github.com/iudanet/cardconnect/internal/validation"
	"github.com/iudanet/cardconnect/pkg/api"
)

// refreshMargin - токен обновляется заранее, за это время до истечения
const refreshMargin = 30 * time.Second

//go:generate moq -out service_mock.go . APIClient

// APIClient - эндпоинты идентификации сервера
type APIClient interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	DeleteAccount(ctx context.Context, accessToken string) error
}

// Service управляет сессией пользователя и выдает uid текущего пользователя
type Service struct {
	api    APIClient
	store  storage.AuthStorage
	logger *slog.Logger
	now    func() time.Time

	refreshMu sync.Mutex
}

var _ remote.IdentityProvider = (*Service)(nil)

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store storage.AuthStorage, logger *slog.Logger) *Service {
	return &Service{
		api:    apiClient,
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Register регистрирует нового пользователя и возвращает его uid
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	username = validation.NormalizeAccount(username)
	if err := validation.ValidateAccount(username); err != nil {
		return "", fmt.Errorf("invalid email: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.api.Register(ctx, api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("username", username), slog.String("user_id", resp.UserID))
	return resp.UserID, nil
}

// Login выполняет аутентификацию и сохраняет сессию
func (s *Service) Login(ctx context.Context, username, password string) (*storage.AuthData, error) {
	username = validation.NormalizeAccount(username)
	if err := validation.ValidateAccount(username); err != nil {
		return nil, fmt.Errorf("invalid email: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}

	resp, err := s.api.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}

	auth := s.sessionFrom(username, resp)
	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", username), slog.String("user_id", auth.UserID))
	return auth, nil
}

// Logout удаляет локальную сессию. Ошибка отзыва токенов на сервере только логируется.
func (s *Service) Logout(ctx context.Context) error {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load session: %w", err)
	}

	if err := s.api.Logout(ctx, auth.AccessToken); err != nil {
		s.logger.WarnContext(ctx, "failed to revoke tokens on server", slog.Any("error", err))
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// Session возвращает сохраненную сессию
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	return s.store.GetAuth(ctx)
}

// CurrentUserID возвращает uid пользователя, если сессия сохранена
func (s *Service) CurrentUserID(ctx context.Context) (string, bool) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrAuthNotFound) {
			s.logger.WarnContext(ctx, "failed to load session", slog.Any("error", err))
		}
		return "", false
	}
	return auth.UserID, auth.UserID != ""
}

// AccessToken возвращает действующий access token, при необходимости обновляя его
func (s *Service) AccessToken(ctx context.Context) (string, error) {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return "", remote.ErrNotAuthenticated
		}
		return "", fmt.Errorf("failed to load session: %w", err)
	}

	if !s.expiring(auth) {
		return auth.AccessToken, nil
	}

	// Один refresh за раз: refresh token одноразовый
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// Пока ждали блокировку, токен мог обновить другой вызов
	auth, err = s.store.GetAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	if !s.expiring(auth) {
		return auth.AccessToken, nil
	}

	resp, err := s.api.Refresh(ctx, auth.RefreshToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", remote.ErrNotAuthenticated, err)
	}

	refreshed := s.sessionFrom(auth.Username, resp)
	if refreshed.UserID == "" {
		refreshed.UserID = auth.UserID
	}
	if err := s.store.SaveAuth(ctx, refreshed); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.DebugContext(ctx, "access token refreshed", slog.String("user_id", refreshed.UserID))
	return refreshed.AccessToken, nil
}

// DeleteAccount удаляет пользователя на сервере и локальную сессию
func (s *Service) DeleteAccount(ctx context.Context) error {
	token, err := s.AccessToken(ctx)
	if err != nil {
		return err
	}

	if err := s.api.DeleteAccount(ctx, token); err != nil {
		return err
	}

	if err := s.store.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *Service) expiring(auth *storage.AuthData) bool {
	return s.now().Add(refreshMargin).Unix() >= auth.ExpiresAt
}

func (s *Service) sessionFrom(username string, resp *api.TokenResponse) *storage.AuthData {
	return &storage.AuthData{
		Username:     username,
		UserID:       resp.UserID,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    s.now().Add(time.Duration(resp.ExpiresIn) * time.Second).Unix(),
	}
}
