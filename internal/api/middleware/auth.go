package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/CMH-ReservationService/internal/api/handlers"
	"github.com/m04kA/CMH-ReservationService/internal/auth"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

const msgUnauthenticated = "не удалось установить личность вызывающего"

// IdentityResolver разрешает личность вызывающего из учётных данных запроса
type IdentityResolver interface {
	Resolve(ctx context.Context, req *http.Request) (domain.CallerIdentity, error)
}

// Logger интерфейс логгера для middleware
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth возвращает middleware аутентификации: разрешает личность вызывающего
// и кладёт её в контекст запроса. Запрос без валидных учётных данных
// отклоняется с 401 — анонимного доступа к защищённым маршрутам нет.
func Auth(resolver IdentityResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := resolver.Resolve(r.Context(), r)
			if err != nil {
				logger.Warn("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			ctx := auth.ContextWithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
