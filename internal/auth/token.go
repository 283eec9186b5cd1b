package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL es la vigencia del token de sesión.
const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("token inválido")

// Claims viaja dentro del JWT: identidad, tenant y rol.
type Claims struct {
	UserID    uint   `json:"sub_id"`
	NegocioID uint   `json:"negocio_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func Generate(secret string, userID, negocioID uint, role string, now time.Time) (string, error) {
	claims := Claims{
		UserID:    userID,
		NegocioID: negocioID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return []byte(secret), nil
		},
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
