// Package session содержит логику менеджера сессий: выдачу токенов при входе,
// двухслойную проверку предъявленного токена и очистку сессий.
//
// Валидность токена требует одновременно корректной подписи и живой строки
// в таблице sessions. Удаление строки принудительно завершает сессию,
// даже если сам токен ещё не истёк.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// Доменные ошибки менеджера сессий. Ошибки хранилища наружу не выходят.
var (
	// ErrInvalidCredentials возвращается при неизвестном пользователе
	// или несовпадении пароля. Снаружи оба случая неразличимы.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInvalidToken возвращается при любом дефекте токена: битая подпись,
	// истёкший срок, отсутствующая сессия или несовпадение владельца.
	ErrInvalidToken = errors.New("invalid token")
)

// UserRepository описывает контракт чтения учётных данных.
type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// SessionRepository описывает контракт работы с таблицей сессий.
type SessionRepository interface {
	UpsertSession(ctx context.Context, session models.Session) error
	FindLiveSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// Service реализует менеджер сессий поверх репозиториев и Maker токенов.
type Service struct {
	users    UserRepository
	sessions SessionRepository
	maker    jwt.Maker
	tokenTTL time.Duration
	log      *slog.Logger
}

// New создает Service. tokenTTL задаёт и срок подписи токена,
// и абсолютный expires_at строки сессии.
func New(users UserRepository, sessions SessionRepository, maker jwt.Maker,
	tokenTTL time.Duration, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		maker:    maker,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// Authenticate сверяет пароль пользователя и при успехе выпускает токен,
// сохраняя сессию в базе. Пароль сравнивается побайтно: схема хранит
// его в открытом виде, хеширование в этой системе не применяется.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	const op = "session.Authenticate"

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		s.log.Error("failed to fetch user", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if user.Password != password {
		return "", ErrInvalidCredentials
	}

	token, err := s.maker.GenerateToken(username)
	if err != nil {
		s.log.Error("failed to generate token", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	sess := models.Session{
		Username:  username,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.tokenTTL),
	}
	if err := s.sessions.UpsertSession(ctx, sess); err != nil {
		s.log.Error("failed to save session", slog.String("op", op), sl.Err(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("session created", slog.String("username", username))
	return token, nil
}

// ValidateToken проверяет подпись токена и наличие живой строки сессии.
// Имя пользователя в строке сессии обязано совпадать с именем из токена,
// иначе токен считается подменённым.
func (s *Service) ValidateToken(ctx context.Context, token string) (*jwt.Claims, error) {
	const op = "session.ValidateToken"

	if token == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.maker.ParseToken(token)
	if err != nil {
		s.log.Debug("token signature check failed", slog.String("op", op), sl.Err(err))
		return nil, ErrInvalidToken
	}

	sess, err := s.sessions.FindLiveSession(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		s.log.Error("failed to fetch session", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if sess.Username != claims.Username {
		s.log.Warn("token username does not match session username",
			slog.String("op", op), slog.String("username", claims.Username))
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ClearSession удаляет сессию по токену. Повторный вызов для уже
// удалённого токена завершается без ошибки.
func (s *Service) ClearSession(ctx context.Context, token string) error {
	const op = "session.ClearSession"

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		s.log.Error("failed to clear session", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// SweepExpired удаляет все истёкшие сессии и возвращает их количество.
// Вызывается однократно при старте процесса; безопасен при повторных вызовах.
func (s *Service) SweepExpired(ctx context.Context) (int64, error) {
	const op = "session.SweepExpired"

	count, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		s.log.Error("failed to sweep expired sessions", slog.String("op", op), sl.Err(err))
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("expired sessions removed", slog.Int64("count", count))
	return count, nil
}
