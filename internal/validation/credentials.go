package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// LoginPattern определяет допустимый формат логина платформы
// Латинские буквы, цифры, точка, дефис и нижнее подчеркивание
var LoginPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// EmailPattern достаточно грубая проверка email, остальное проверит сервер
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MaxIdentifierLen максимальная длина логина или email
const MaxIdentifierLen = 254

// ValidateIdentifier проверяет логин или email, которым пользователь входит на платформу.
func ValidateIdentifier(identifier string) error {
	if strings.TrimSpace(identifier) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(identifier) > MaxIdentifierLen {
		return fmt.Errorf("username must not exceed %d characters", MaxIdentifierLen)
	}

	if strings.Contains(identifier, "@") {
		if !EmailPattern.MatchString(identifier) {
			return fmt.Errorf("email %q is not valid", identifier)
		}
		return nil
	}

	if !LoginPattern.MatchString(identifier) {
		return fmt.Errorf("username can only contain letters, numbers, dots, dashes and underscores")
	}

	return nil
}

// ValidatePassword проверяет пароль перед отправкой на сервер.
// Политику длины задает платформа, здесь только пустое значение.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	return nil
}
