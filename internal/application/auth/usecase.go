package auth

import (
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dramirez-dev/conecta-pueblo-api/internal/domain"
	"github.com/dramirez-dev/conecta-pueblo-api/pkg/session"
)

// Config configuración del login de administración.
type Config struct {
	Password     string // secreto en claro (desarrollo)
	PasswordHash string // hash bcrypt; tiene prioridad si está definido
	Secret       string // clave HMAC del token de sesión
	Issuer       string
	TTL          time.Duration
}

// AuthUseCase login del panel: una única credencial compartida, sin usuarios
// ni roles. El resultado de un login correcto es un token de sesión firmado.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login compara la contraseña y emite el token de sesión.
// Con ADMIN_PASSWORD_HASH configurado se compara con bcrypt; si no, en tiempo
// constante contra ADMIN_PASSWORD.
func (uc *AuthUseCase) Login(password string) (string, error) {
	if !uc.comparar(password) {
		return "", domain.ErrUnauthorized
	}
	token, err := session.Emitir(uc.cfg.Secret, uc.cfg.Issuer, uc.cfg.TTL)
	if err != nil {
		return "", err
	}
	return token, nil
}

// TTL vida del token, que el handler replica en el Max-Age de la cookie.
func (uc *AuthUseCase) TTL() time.Duration {
	return uc.cfg.TTL
}

func (uc *AuthUseCase) comparar(password string) bool {
	if uc.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(password)) == nil
	}
	if uc.cfg.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(uc.cfg.Password), []byte(password)) == 1
}
