package credentials

import (
	"context"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/config"
	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// Store in-memory хранилище bearer-токенов.
// Наполняется при старте из конфигурации и далее неизменяемо.
type Store struct {
	byToken map[string]domain.CallerIdentity
}

// NewStore создает хранилище токенов из seed-данных конфигурации
func NewStore(seed []config.TokenConfig) (*Store, error) {
	byToken := make(map[string]domain.CallerIdentity, len(seed))

	for _, tc := range seed {
		if tc.Token == "" || tc.UserID == "" {
			return nil, fmt.Errorf("%w: token and user_id are required", ErrInvalidSeed)
		}

		role := domain.Role(tc.Role)
		switch role {
		case domain.RoleMember, domain.RoleStaff, domain.RoleAdmin:
		case "":
			role = domain.RoleMember
		default:
			return nil, fmt.Errorf("%w: unknown role %q for user %s", ErrInvalidSeed, tc.Role, tc.UserID)
		}

		if _, exists := byToken[tc.Token]; exists {
			return nil, fmt.Errorf("%w: duplicate token for user %s", ErrInvalidSeed, tc.UserID)
		}

		byToken[tc.Token] = domain.CallerIdentity{
			ID:          tc.UserID,
			DisplayName: tc.DisplayName,
			Role:        role,
		}
	}

	return &Store{byToken: byToken}, nil
}

// Lookup разрешает bearer-токен в личность пользователя
func (s *Store) Lookup(ctx context.Context, token string) (domain.CallerIdentity, error) {
	identity, ok := s.byToken[token]
	if !ok {
		return domain.CallerIdentity{}, ErrTokenNotFound
	}
	return identity, nil
}
