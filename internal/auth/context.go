package auth

import (
	"context"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

type contextKey struct{}

// ContextWithIdentity кладёт разрешённую личность вызывающего в контекст запроса
func ContextWithIdentity(ctx context.Context, identity domain.CallerIdentity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFromContext извлекает личность вызывающего из контекста
func IdentityFromContext(ctx context.Context) (domain.CallerIdentity, bool) {
	identity, ok := ctx.Value(contextKey{}).(domain.CallerIdentity)
	return identity, ok
}
