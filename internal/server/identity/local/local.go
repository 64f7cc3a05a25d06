// local - пакет с локальной стратегией аутентификации по паре email+пароль.
package local

import (
	"context"
	"errors"
	"fmt"

	"bets/internal/common/identity/tools/hasher"
	"bets/internal/repositories/identity"
)

// Strategy - локальная стратегия аутентификации. Ищет учетную запись по email
// и проверяет пароль по хэшу из хранилища.
type Strategy struct {
	users identity.Identifier
}

// NewStrategy - возвращает новую локальную стратегию поверх заданного хранилища.
func NewStrategy(users identity.Identifier) *Strategy {
	return &Strategy{users: users}
}

// Authenticate - проверяет пару email+пароль и возвращает учетную запись пользователя.
// Ошибки учетных данных возвращаются типизированными, ошибка хранилища
// пробрасывается без изменений, чтобы вызывающая сторона могла отличить
// "неверный пароль" от "хранилище недоступно".
func (s *Strategy) Authenticate(ctx context.Context, email, password string) (*identity.Principal, error) {
	user, ok, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email error, %w", err)
	}
	if !ok {
		return nil, identity.ErrCredentialNotFound
	}

	// Пользователь без установленного пароля не может пройти аутентификацию.
	// Проверяю явно, не полагаясь на сравнение хэшей.
	if user.PasswordHash == "" || user.Salt == "" {
		return nil, identity.ErrNoPasswordSet
	}

	if !hasher.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, identity.ErrCredentialMismatch
	}

	return &user, nil
}

// IsCredentialError - функция для проверки, что ошибка вызвана неверными учетными данными.
// Все такие ошибки наружу отдаются одним обобщенным сообщением.
func IsCredentialError(err error) bool {
	return errors.Is(err, identity.ErrCredentialNotFound) ||
		errors.Is(err, identity.ErrCredentialMismatch) ||
		errors.Is(err, identity.ErrNoPasswordSet)
}
