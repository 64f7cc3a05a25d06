package checker

import "strings"

// CheckEmail - функция для проверки корректности email.
func CheckEmail(email string) bool {
	// проверяю, что email не является пустой строкой и содержит разделитель
	return email != "" && strings.Contains(email, "@")
}

// CheckPassword - функция для проверки корректности пароля.
func CheckPassword(password string) bool {
	// проверяю, что пароль не является пустой строкой
	return password != ""
}
