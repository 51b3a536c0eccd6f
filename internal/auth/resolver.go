package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
	"github.com/m04kA/CMH-ReservationService/internal/infra/storage/credentials"
)

// credentialSource один источник учётных данных запроса.
// Возвращает (nil, nil), когда источник в запросе отсутствует.
// Ошибка означает, что источник присутствует, но некорректен — резолвер
// логирует её и переходит к следующему источнику, не прерывая цепочку.
type credentialSource interface {
	Name() string
	Resolve(ctx context.Context, r *http.Request) (*domain.CallerIdentity, error)
}

// Resolver разрешает личность вызывающего из учётных данных запроса.
//
// Источники опрашиваются в строгом приоритетном порядке, побеждает первый
// успешный: сессионная cookie, затем bearer-токен (заголовок Authorization
// приоритетнее query-параметра token). Несколько механизмов аутентификации
// сосуществуют, достаточно успеха любого из них, поэтому некорректный
// источник пропускается, а не считается фатальным.
type Resolver struct {
	sources []credentialSource
	logger  Logger
}

// NewResolver создает резолвер со стандартной цепочкой источников
func NewResolver(cookieName string, store CredentialStore, logger Logger) *Resolver {
	return &Resolver{
		sources: []credentialSource{
			&sessionCookieSource{cookieName: cookieName},
			&bearerTokenSource{store: store},
		},
		logger: logger,
	}
}

// Resolve разрешает личность вызывающего.
// Возвращает ErrUnauthenticated, когда все источники исчерпаны.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) (domain.CallerIdentity, error) {
	for _, source := range r.sources {
		identity, err := source.Resolve(ctx, req)
		if err != nil {
			// Некорректный источник: логируем и пробуем следующий
			r.logger.Warn("auth: source %s rejected credentials: %v", source.Name(), err)
			continue
		}
		if identity != nil {
			return *identity, nil
		}
	}

	return domain.CallerIdentity{}, ErrUnauthenticated
}

// sessionCookieSource источник: структурированный сессионный токен в cookie
type sessionCookieSource struct {
	cookieName string
}

func (s *sessionCookieSource) Name() string { return "session_cookie" }

func (s *sessionCookieSource) Resolve(ctx context.Context, r *http.Request) (*domain.CallerIdentity, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		// Cookie отсутствует
		return nil, nil
	}

	identity, err := decodeSessionToken(cookie.Value)
	if err != nil {
		return nil, err
	}

	return &identity, nil
}

// bearerTokenSource источник: bearer-токен из заголовка Authorization
// или query-параметра token (заголовок приоритетнее)
type bearerTokenSource struct {
	store CredentialStore
}

func (s *bearerTokenSource) Name() string { return "bearer_token" }

func (s *bearerTokenSource) Resolve(ctx context.Context, r *http.Request) (*domain.CallerIdentity, error) {
	token := extractBearerToken(r)
	if token == "" {
		return nil, nil
	}

	identity, err := s.store.Lookup(ctx, token)
	if err != nil {
		if errors.Is(err, credentials.ErrTokenNotFound) {
			return nil, errors.New("unknown bearer token")
		}
		return nil, err
	}

	return &identity, nil
}

// extractBearerToken извлекает bearer-токен из запроса.
// Заголовок Authorization имеет приоритет над query-параметром.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		const prefix = "Bearer "
		if strings.HasPrefix(header, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(header, prefix))
		}
		// Заголовок есть, но это не Bearer-схема: query-параметр всё ещё допустим
	}

	return r.URL.Query().Get("token")
}
