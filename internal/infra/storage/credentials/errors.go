package credentials

import "errors"

var (
	// ErrTokenNotFound возвращается, когда bearer-токен не известен хранилищу
	ErrTokenNotFound = errors.New("credentials.store: token not found")

	// ErrInvalidSeed возвращается при некорректных seed-данных токенов
	ErrInvalidSeed = errors.New("credentials.store: invalid seed data")
)
