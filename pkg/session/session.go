package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims del token de sesión del panel de administración.
// No hay usuarios ni roles: una única credencial compartida, el token solo
// acredita que el login fue correcto y hasta cuándo.
type Claims struct {
	jwt.RegisteredClaims
	Admin bool `json:"admin"`
}

// Emitir genera un token de sesión firmado (HS256) con expiración.
func Emitir(secret, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("session: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Admin: true,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verificar valida firma y expiración del token de sesión.
// La mera presencia de la cookie no basta: un token sin firma válida se rechaza.
func Verificar(secret, tokenString string) error {
	if secret == "" {
		return fmt.Errorf("session: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Admin {
		return fmt.Errorf("claims inválidos")
	}
	return nil
}
