package auth

import "errors"

var (
	// ErrUnauthenticated возвращается, когда ни один источник учётных данных
	// не дал личность вызывающего. Fail closed: никаких подстановок
	// тестовых пользователей, и чтение, и запись отклоняются.
	ErrUnauthenticated = errors.New("auth: unauthenticated")
)
