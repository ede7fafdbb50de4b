// Package validation проверяет учетные данные аккаунта cardconnect.
// Аккаунт идентифицируется email адресом, как при входе в мобильном приложении.
package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxAccountLen максимальная длина адреса (RFC 5321)
	MaxAccountLen = 254
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 10
	// MaxPasswordLen ограничивает вход argon2
	MaxPasswordLen = 128
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// NormalizeAccount приводит email к виду, под которым он хранится на сервере:
// без пробелов по краям и в нижнем регистре.
func NormalizeAccount(account string) string {
	return strings.ToLower(strings.TrimSpace(account))
}

// ValidateAccount проверяет, что имя аккаунта - email адрес.
// Ожидает уже нормализованное значение.
func ValidateAccount(account string) error {
	if account == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(account) > MaxAccountLen {
		return fmt.Errorf("email must not exceed %d characters", MaxAccountLen)
	}

	if err := validate.Var(account, "email"); err != nil {
		return fmt.Errorf("%q is not a valid email address", account)
	}

	return nil
}

// ValidatePassword проверяет требования к паролю аккаунта:
// длина 10-128 символов, буквы вместе с цифрами или знаками.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}

	var hasLetter, hasOther bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsSpace(r):
		default:
			hasOther = true
		}
	}

	if !hasLetter || !hasOther {
		return fmt.Errorf("password must mix letters with digits or symbols")
	}

	return nil
}
