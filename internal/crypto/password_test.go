package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))

	// соль случайная, хеши одного пароля различаются
	other, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)

	_, err = HashPassword("")
	assert.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		password string
		hash     string
	}{
		{name: "matching password", password: "correct-horse-battery", hash: hash},
		{name: "wrong password", password: "wrong-horse-battery", hash: hash, wantErr: ErrPasswordMismatch},
		{name: "empty hash", password: "correct-horse-battery", hash: "", wantErr: ErrInvalidHash},
		{name: "unknown algorithm", password: "x", hash: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "broken params", password: "x", hash: "$argon2id$v=19$garbage$c2FsdA$aGFzaA", wantErr: ErrInvalidHash},
		{name: "broken salt", password: "x", hash: "$argon2id$v=19$m=1024,t=1,p=1$!!!$aGFzaA", wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
