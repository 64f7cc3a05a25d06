// hasher - пакет со вспомогательными функциями для хэширования и проверки паролей пользователей.
package hasher

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Параметры алгоритма PBKDF2.
const (
	iterations = 100_000 // количество итераций (чем больше, тем лучше защита)
	keyLength  = 64      // длина результирующего хэша в байтах
	saltLength = 128     // длина соли в байтах до кодирования в base64
)

// GenerateSalt - функция для генерации новой соли.
// Соль генерируется заново при каждой установке пароля и никогда не переиспользуется.
func GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt, %w", err)
	}
	// кодирую соль в виде слайса байт в строку
	return base64.StdEncoding.EncodeToString(salt), nil
}

// DeriveHash - функция, которая вычисляет хэш пароля с заданной солью и возвращает хэш в виде строки.
func DeriveHash(password, salt string) string {
	hash := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyLength, sha256.New)
	return hex.EncodeToString(hash)
}

// VerifyPassword - функция для проверки пароля пользователя.
// Пустой пароль кандидата и пользователь без установленного пароля не проходят
// проверку ни при каких условиях. Сравнение хэшей выполняется за постоянное время.
func VerifyPassword(password, salt, hash string) bool {
	if password == "" {
		return false
	}
	if salt == "" || hash == "" {
		return false
	}
	candidate := DeriveHash(password, salt)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hash)) == 1
}
