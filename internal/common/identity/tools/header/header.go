// header - пакет для извлечения JWT из заголовков HTTP.
package header

import (
	"fmt"
	"net/http"
	"strings"
)

// Схема заголовка авторизации. Клиент предъявляет токен в том же виде,
// в котором получил его в ответе на вход.
const scheme = "Bearer"

// parseAuthHeader - выделяет токен из значения заголовка Authorization.
func parseAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing authorization header")
	}

	// Проверяю, что заголовок состоит из схемы и токена
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != scheme {
		return "", fmt.Errorf("invalid authorization header format")
	}
	if parts[1] == "" {
		return "", fmt.Errorf("token is empty")
	}

	return parts[1], nil
}

// GetTokenFromHeader - функция для получения токена из заголовка запроса.
func GetTokenFromHeader(req *http.Request) (string, error) {
	return parseAuthHeader(req.Header.Get("Authorization"))
}
