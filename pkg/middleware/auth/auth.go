package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nqn-dd/NovoMD/internal/config"
	"github.com/nqn-dd/NovoMD/pkg/common/code"
)

const UserKey = "AUTH_USER_KEY"

type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// Sign issues a service-account token for the configured client.
func Sign(clientID string) (string, error) {
	conf := config.Global().Auth
	now := time.Now()
	claims := &Claims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "novomd",
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(conf.TokenTTLMin) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(conf.Secret))
}

// ValidateToken parses and verifies a bearer token.
func ValidateToken(_ context.Context, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, code.InvalidToken.WithMsgf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.Global().Auth.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, code.InvalidToken.WithErr(err)
	}
	return claims, nil
}

// GetCurrentClient returns the authenticated client id, or "" when the
// request was not authenticated.
func GetCurrentClient(ctx context.Context) string {
	v := ctx.Value(UserKey)
	if v == nil {
		return ""
	}
	if claims, ok := v.(*Claims); ok {
		return claims.ClientID
	}
	return ""
}
