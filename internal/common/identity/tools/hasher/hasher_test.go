package hasher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	// Генерирую несколько солей подряд и проверяю, что все они разные
	salts := make(map[string]bool)
	for i := 0; i < 10; i++ {
		salt, err := GenerateSalt()
		require.NoError(t, err)
		assert.NotEqual(t, "", salt)
		assert.Equal(t, false, salts[salt])
		salts[salt] = true
	}
}

func TestDeriveHash(t *testing.T) {
	// Тест с повторным хэшированием одного и того-же пароля и проверкой повторяемости результата
	password := "some password for hashing"
	salt, err := GenerateSalt()
	require.NoError(t, err)

	res1 := DeriveHash(password, salt)
	for i := 0; i < 5; i++ {
		res2 := DeriveHash(password, salt)
		assert.Equal(t, res1, res2)
	}

	// хэширую другой пароль с той-же солью и проверяю, что хэши не совпадают
	res2 := DeriveHash("some different password", salt)
	assert.NotEqual(t, res1, res2)

	// хэширую тот-же пароль с другой солью и проверяю, что хэши не совпадают
	salt2, err := GenerateSalt()
	require.NoError(t, err)
	res3 := DeriveHash(password, salt2)
	assert.NotEqual(t, res1, res3)
}

func TestVerifyPassword(t *testing.T) {
	password := "secret"
	salt, err := GenerateSalt()
	require.NoError(t, err)
	hash := DeriveHash(password, salt)

	tests := []struct {
		name     string
		password string
		salt     string
		hash     string
		want     bool
	}{
		{
			name:     "correct password",
			password: password,
			salt:     salt,
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrong",
			salt:     salt,
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty password",
			password: "",
			salt:     salt,
			hash:     hash,
			want:     false,
		},
		{
			name:     "user has no password set",
			password: password,
			salt:     "",
			hash:     "",
			want:     false,
		},
		{
			name:     "empty password against user with no password set",
			password: "",
			salt:     "",
			hash:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword(tt.password, tt.salt, tt.hash))
		})
	}
}
