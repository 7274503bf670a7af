// Package jwt реализует генерацию и разбор подписанных токенов сессии.
//
// Токен несёт имя пользователя и срок действия. Подпись проверяется
// секретным ключом, известным только менеджеру сессий. Сама по себе
// корректная подпись недостаточна для доступа: сервис сессий дополнительно
// сверяет токен с таблицей sessions.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims описывает полезную нагрузку токена сессии.
type Claims struct {
	Username             string `json:"username"` // Имя пользователя, владельца сессии
	jwt.RegisteredClaims        // Стандартные claims (ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для генерации и разбора токенов сессии.
type Maker interface {
	// GenerateToken выпускает подписанный токен для username.
	GenerateToken(username string) (string, error)
	// ParseToken проверяет подпись и срок действия, возвращает Claims.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует Maker на секретном ключе HMAC
// и фиксированном времени жизни токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker создаёт MakerImpl с заданным секретом и TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
