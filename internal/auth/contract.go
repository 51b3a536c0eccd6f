package auth

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// CredentialStore интерфейс хранилища bearer-токенов
type CredentialStore interface {
	Lookup(ctx context.Context, token string) (domain.CallerIdentity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
