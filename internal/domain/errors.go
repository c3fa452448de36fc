package domain

import "errors"

// Ошибки домена (без внешних зависимостей).
var (
	ErrNotFound           = errors.New("запись не найдена")
	ErrUserNotFound       = errors.New("пользователь не найден")
	ErrEmailAlreadyExists = errors.New("email уже зарегистрирован")
	ErrWrongPassword      = errors.New("неверный пароль")
	ErrInvalidInput       = errors.New("неверные входные данные")
	ErrUnauthorized       = errors.New("не аутентифицирован")
	ErrForbidden          = errors.New("недостаточно прав")
)
