// Package server собирает HTTP API сервера документов
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/cardconnect/internal/server/handlers"
	"github.com/iudanet/cardconnect/internal/server/middleware"
	"github.com/iudanet/cardconnect/internal/server/storage"
)

// healthPath не логируется
const healthPath = "/api/v1/health"

// Deps - зависимости роутера
type Deps struct {
	Logger      *slog.Logger
	Users       storage.UserStorage
	Tokens      storage.TokenStorage
	Documents   storage.DocumentStorage
	DB          handlers.Pinger
	RateLimiter *middleware.RateLimiter
	Version     string
	JWT         handlers.JWTConfig
	MaxDocBytes int64
}

// NewRouter создает chi роутер со всеми маршрутами API
func NewRouter(d Deps) http.Handler {
	authHandler := handlers.NewAuthHandler(d.Logger, d.Users, d.Tokens, d.Documents, d.JWT)
	cardsHandler := handlers.NewCardsHandler(d.Logger, d.Documents, d.MaxDocBytes)
	healthHandler := handlers.NewHealthHandler(d.Logger, d.DB, d.Version)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.LoggingMiddleware(d.Logger, healthPath))
	r.Use(middleware.RecoveryMiddleware(d.Logger))
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.Refresh)

		// Защищенные маршруты
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(d.Logger, d.JWT))

			r.Post("/auth/logout", authHandler.Logout)
			r.Delete("/auth/account", authHandler.DeleteAccount)

			r.Route("/users/{userID}/cards", func(r chi.Router) {
				r.Get("/", cardsHandler.List)
				r.Delete("/", cardsHandler.DeleteCollection)
				r.Put("/{cardID}", cardsHandler.Put)
				r.Delete("/{cardID}", cardsHandler.Delete)
			})
		})
	})

	return r
}
