package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/m04kA/CMH-ReservationService/internal/domain"
)

// sessionToken структура сессионного токена, переносимого в cookie.
// Значение cookie — base64url(JSON).
type sessionToken struct {
	UserID      string `json:"id"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
}

// decodeSessionToken декодирует значение сессионной cookie в личность.
// Любая ошибка декодирования означает "источник отсутствует", не фатальна.
func decodeSessionToken(value string) (domain.CallerIdentity, error) {
	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return domain.CallerIdentity{}, fmt.Errorf("decode base64: %w", err)
	}

	var token sessionToken
	if err := json.Unmarshal(raw, &token); err != nil {
		return domain.CallerIdentity{}, fmt.Errorf("unmarshal session token: %w", err)
	}

	if token.UserID == "" {
		return domain.CallerIdentity{}, fmt.Errorf("session token has empty user id")
	}

	role := domain.Role(token.Role)
	switch role {
	case domain.RoleMember, domain.RoleStaff, domain.RoleAdmin:
	default:
		role = domain.RoleMember
	}

	return domain.CallerIdentity{
		ID:          token.UserID,
		DisplayName: token.DisplayName,
		Role:        role,
	}, nil
}

// EncodeSessionToken кодирует личность в значение сессионной cookie.
// Используется тестами и инструментами выпуска сессий.
func EncodeSessionToken(identity domain.CallerIdentity) (string, error) {
	raw, err := json.Marshal(sessionToken{
		UserID:      identity.ID,
		DisplayName: identity.DisplayName,
		Role:        string(identity.Role),
	})
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}
