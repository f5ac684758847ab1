package utils

import (
	"errors"
	"time"

	"washly/config"

	"github.com/golang-jwt/jwt"
)

func adminSecret() []byte {
	secret := config.AppConfig.AdminJWTSecret
	if secret == "" {
		secret = "washly-dev-admin"
	}
	return []byte(secret)
}

// GenerateAdminToken creates a signed JWT carrying the admin role claim.
// Tokens are issued out-of-band to dashboard operators.
func GenerateAdminToken(subject string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(adminSecret())
}

// ParseAdminToken validates the signature and the admin role claim.
func ParseAdminToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return adminSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid admin token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return "", errors.New("token does not carry the admin role")
	}
	sub, _ := claims["sub"].(string)
	return sub, nil
}
