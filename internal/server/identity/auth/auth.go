// auth - пакет, который реализует middleware для аутентификации пользователя по токену.
package auth

import (
	"context"
	"net/http"

	"bets/internal/common/identity/tools/header"
	"bets/internal/server/identity/verifier"
	"bets/internal/server/logger"

	"go.uber.org/zap"
)

type contextKey string

// PrincipalKey - ключ для установки учетной записи пользователя в контекст.
const PrincipalKey = contextKey("principal")

// UserIDKey - ключ для установки ID пользователя в контекст.
const UserIDKey = contextKey("userID")

// Middleware - проверяет JWT входящих запросов к серверу.
// Позволит установить доступ к ресурсам только для аутентифицированных пользователей.
// Из полученного токена извлекается учетная запись пользователя и устанавливается в контекст.
// Клиенту детали ошибки не раскрываются: любой дефект токена отдается как 401,
// и только отказ хранилища отдается как 500.
func Middleware(v *verifier.Verifier) func(http.Handler) http.HandlerFunc {
	return func(h http.Handler) http.HandlerFunc {
		return func(res http.ResponseWriter, req *http.Request) {

			getToken, err := header.GetTokenFromHeader(req)
			// В случае ошибки получения токена возвращаю статус 401 - пользователь не аутентифицирован.
			if err != nil {
				logger.ServerLog.Error("failed to get token from request", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				http.Error(res, "authentication required", http.StatusUnauthorized)
				return
			}

			user, err := v.Verify(req.Context(), getToken)
			if err != nil {
				if verifier.IsAuthFailure(err) {
					logger.ServerLog.Error("failed to verify token", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
					http.Error(res, "authentication required", http.StatusUnauthorized)
					return
				}
				// отказ хранилища отдаю отдельным статусом, чтобы клиент мог повторить запрос
				logger.ServerLog.Error("verify token storage error", zap.String("address", req.URL.String()), zap.String("error", err.Error()))
				http.Error(res, "internal server error", http.StatusInternalServerError)
				return
			}

			// В случае успешной проверки устанавливаю учетную запись в контекст для дальнейшей обработки.
			ctx := context.WithValue(req.Context(), PrincipalKey, user)
			ctx = context.WithValue(ctx, UserIDKey, user.ID)

			// вызываю основной обработчик
			h.ServeHTTP(res, req.WithContext(ctx))
		}
	}
}
