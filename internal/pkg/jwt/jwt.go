package jwt

import (
	"fmt"
	"time"

	"github.com/careviah/care-scheduler/internal/config"
	"github.com/golang-jwt/jwt/v4"
)

type Manager struct{}

func NewManger() *Manager {
	return &Manager{}
}

// InvalidTokenError reports a token that failed signature or claims
// validation, as opposed to infrastructure failures.
type InvalidTokenError struct {
	reason string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token: %s", e.reason)
}

func (m *Manager) CreateToken(id string) (string, error) {
	claims := &jwt.RegisteredClaims{
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.JwtTTL())),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(config.Secret()))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *Manager) GetIdFromToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &InvalidTokenError{reason: fmt.Sprintf("unexpected signing method %v", t.Header["alg"])}
		}
		return []byte(config.Secret()), nil
	})
	if err != nil {
		return "", &InvalidTokenError{reason: err.Error()}
	}

	if !parsed.Valid {
		return "", &InvalidTokenError{reason: "token is not valid"}
	}

	return claims.Subject, nil
}
