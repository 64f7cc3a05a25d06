package identity

import (
	"context"
	"errors"
)

// Identifier - интерфейс для поиска учетных записей пользователей в хранилище.
// Отсутствие записи не является ошибкой инфраструктуры и возвращается через ok == false.
type Identifier interface {
	FindByEmail(ctx context.Context, email string) (user Principal, ok bool, err error) // Метод для поиска пользователя по email.
	FindByID(ctx context.Context, id string) (user Principal, ok bool, err error)       // Метод для поиска пользователя по идентификатору.
}

// UserKeeper - интерфейс хранилища учетных записей пользователей.
type UserKeeper interface {
	Identifier
	Register(ctx context.Context, user Principal) error              // Метод для создания новой учетной записи.
	UpdatePassword(ctx context.Context, id, hash, salt string) error // Метод для смены пароля пользователя.
	UpdateEmail(ctx context.Context, id, email string) error         // Метод для смены email пользователя.
}

// Ошибки аутентификации. Наружу все ошибки учетных данных отдаются одним
// обобщенным сообщением, различие между ними нужно только для логирования.
var (
	ErrCredentialNotFound = errors.New("no user with such email")          // пользователь с таким email не найден
	ErrCredentialMismatch = errors.New("password is wrong")                // пароль не прошел проверку
	ErrNoPasswordSet      = errors.New("user has no password set")         // у пользователя не установлен пароль
	ErrTokenInvalid       = errors.New("token is malformed or not signed") // подпись токена не прошла проверку
	ErrPrincipalGone      = errors.New("user from token no longer exists") // подпись верна, но учетная запись удалена
)

// Principal - учетная запись пользователя. Поля PasswordHash и Salt - производный
// секретный материал, который не должен покидать границы сервера.
// Если Salt не установлена, то PasswordHash так же не установлен - такой
// пользователь не может пройти локальную аутентификацию.
type Principal struct {
	ID           string  // уникальный идентификатор, назначается при создании
	Email        string  // уникальный email, ключ локальной стратегии
	FirstName    string  // имя
	LastName     string  // фамилия
	FathersName  string  // отчество
	Phone        string  // телефон
	BalanceFree  float64 // свободный баланс
	BalanceGame  float64 // баланс в игре
	Role         string  // роль пользователя, например "admin" или "user"
	Status       string  // статус учетной записи
	Comments     string  // комментарий администратора
	PasswordHash string  // хэш пароля, пустая строка - пароль не установлен
	Salt         string  // соль, генерируется заново при каждой установке пароля
}

// RedactedPrincipal - внешнее представление учетной записи без секретного материала.
// Только эта структура может пересекать границу доверия в ответах сервера.
type RedactedPrincipal struct {
	ID          string  `json:"userId"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	FathersName string  `json:"fathersName"`
	Phone       string  `json:"phone"`
	BalanceFree float64 `json:"balanceFree"`
	BalanceGame float64 `json:"balanceGame"`
	Role        string  `json:"role"`
}

// Redact - возвращает представление учетной записи с вычищенными хэшем и солью.
func (p *Principal) Redact() RedactedPrincipal {
	return RedactedPrincipal{
		ID:          p.ID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		FathersName: p.FathersName,
		Phone:       p.Phone,
		BalanceFree: p.BalanceFree,
		BalanceGame: p.BalanceGame,
		Role:        p.Role,
	}
}

// LoginData - структура данных запроса на вход.
type LoginData struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль пользователя
}

// RegisterData - структура данных запроса на создание пользователя.
type RegisterData struct {
	Email       string `json:"email"`       // email пользователя
	Password    string `json:"password"`    // пароль пользователя
	FirstName   string `json:"firstName"`   // имя
	LastName    string `json:"lastName"`    // фамилия
	FathersName string `json:"fathersName"` // отчество
	Phone       string `json:"phone"`       // телефон
	Role        string `json:"role"`        // роль пользователя
}

// UpdateData - структура данных запроса на изменение учетной записи.
// Если передан новый пароль, то для подтверждения требуется старый пароль.
// Без пароля запрос меняет только email.
type UpdateData struct {
	Password    string `json:"password"`    // новый пароль
	OldPassword string `json:"oldPassword"` // текущий пароль для подтверждения смены
	Email       string `json:"email"`       // новый email
}
