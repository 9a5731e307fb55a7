package utils

import (
	"errors"
	"fmt"

	"stylebook/config"

	"github.com/golang-jwt/jwt"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrMissingSecret = errors.New("JWT_SECRET is not configured")
)

// TokenClaims are the claims issued by the auth service.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

func secretKey() ([]byte, error) {
	if config.AppConfig.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return []byte(config.AppConfig.JWTSecret), nil
}

// ValidateToken parses an HMAC signed token and returns its claims.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	key, err := secretKey()
	if err != nil {
		return nil, err
	}
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GenerateToken signs a token for subject with role. Used by tests and local tooling;
// production tokens come from the auth service.
func GenerateToken(subject, role string, expiresAt int64) (string, error) {
	key, err := secretKey()
	if err != nil {
		return "", err
	}
	claims := TokenClaims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   subject,
			ExpiresAt: expiresAt,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}
