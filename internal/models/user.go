package models

import "time"

// User представляет пользователя на сервере документов
type User struct {
	CreatedAt    time.Time  `json:"created_at"`           // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"` // время последнего входа
	ID           string     `json:"id"`                   // UUID пользователя, он же uid коллекции карточек
	Username     string     `json:"username"`             // уникальный username
	PasswordHash string     `json:"-"`                    // argon2id хеш пароля в encoded формате
}

// RefreshToken представляет refresh token пользователя.
// В базе хранится только SHA256 хеш токена.
type RefreshToken struct {
	ExpiresAt time.Time `json:"expires_at"` // время истечения
	CreatedAt time.Time `json:"created_at"` // время создания
	TokenHash string    `json:"token_hash"` // hex SHA256 токена
	UserID    string    `json:"user_id"`    // ID пользователя
}
