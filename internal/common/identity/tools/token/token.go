// token - пакет для создания и проверки JWT пользователей.
package token

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - структура утверждений, которая включает стандартные утверждения
// и минимальный набор пользовательских: идентификатор, логин и email.
// В утверждения нельзя помещать секретный материал (хэш, соль).
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Login  string `json:"login"`
	Email  string `json:"email"`
}

// JWT - структура для создания и проверки токенов.
// Секретный ключ устанавливается один раз при старте процесса и далее не меняется.
// Смена ключа делает недействительными все ранее выданные токены.
type JWT struct {
	secret []byte
}

// New - возвращает новый экземпляр JWT с заданным секретным ключом.
func New(secret string) *JWT {
	return &JWT{secret: []byte(secret)}
}

// BuildJWT - создает токен с алгоритмом подписи HS256 и возвращает его в виде строки.
// Утверждение об истечении срока действия не устанавливается: токен действует
// до смены секретного ключа, отозвать отдельный токен на стороне сервера нельзя.
func (j *JWT) BuildJWT(id, login, email string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: id,
		Login:  login,
		Email:  email,
	})

	// создаю строку токена
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to signed JWT to string, %w", err)
	}
	return tokenString, nil
}

// GetClaims - функция для получения утверждений из токена с проверкой заголовка алгоритма токена.
// Заголовок должен совпадать с тем, который сервер использует для подписи и проверки токенов.
func (j *JWT) GetClaims(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return j.secret, nil
		})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is not valid")
	}

	return claims, nil
}
