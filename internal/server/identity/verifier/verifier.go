// verifier - пакет для проверки токена и разрешения его в живую учетную запись пользователя.
package verifier

import (
	"context"
	"errors"
	"fmt"

	"bets/internal/common/identity/tools/token"
	"bets/internal/repositories/identity"
)

// Verifier - проверяет подпись токена и загружает учетную запись из хранилища.
// Загрузка выполняется при каждой проверке, чтобы подхватывать изменения роли и
// статуса, произошедшие после выдачи токена.
type Verifier struct {
	tokens *token.JWT
	users  identity.Identifier
}

// New - возвращает новый Verifier поверх заданных токенов и хранилища.
func New(tokens *token.JWT, users identity.Identifier) *Verifier {
	return &Verifier{tokens: tokens, users: users}
}

// Verify - проверяет токен и возвращает учетную запись пользователя.
// Если подпись верна, но учетная запись уже удалена, возвращается
// identity.ErrPrincipalGone - удаление пользователя отзывает все его токены.
func (v *Verifier) Verify(ctx context.Context, tokenStr string) (*identity.Principal, error) {
	claims, err := v.tokens.GetClaims(tokenStr)
	if err != nil {
		return nil, errors.Join(identity.ErrTokenInvalid, err)
	}

	user, ok, err := v.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user by id error, %w", err)
	}
	if !ok {
		return nil, identity.ErrPrincipalGone
	}

	return &user, nil
}

// IsAuthFailure - функция для проверки, что ошибка вызвана самим токеном,
// а не отказом инфраструктуры.
func IsAuthFailure(err error) bool {
	return errors.Is(err, identity.ErrTokenInvalid) ||
		errors.Is(err, identity.ErrPrincipalGone)
}
