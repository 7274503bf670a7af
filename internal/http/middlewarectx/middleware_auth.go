// Package middlewarectx содержит HTTP middleware приложения:
// проверку токена сессии из заголовка X-Token и счётчик запросов.
//
// VerifyToken сверяет токен с менеджером сессий и при успехе кладёт
// имя пользователя в контекст запроса для нижестоящих обработчиков.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/services/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для имени пользователя в контексте.
const User Key = "username"

// TokenHeader — выделенный заголовок с токеном сессии,
// без префикса Authorization/Bearer.
const TokenHeader = "X-Token"

// Service описывает интерфейс проверки токена сессии.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*jwt.Claims, error)
}

// VerifyToken возвращает middleware, проверяющее токен из заголовка X-Token.
//
// Отсутствующий токен отклоняется как not-found, токен с дефектом
// подписи, истёкшим сроком или без живой сессии — как validation error.
// Прочие ошибки нормализуются в generic "invalid token".
func VerifyToken(sessions Service, log *slog.Logger, dev bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.VerifyToken"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := r.Header.Get(TokenHeader)
			if token == "" {
				log.Debug("request without token")
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Fail(http.StatusNotFound,
					"a token is required for authentication", nil, dev))
				return
			}

			claims, err := sessions.ValidateToken(r.Context(), token)
			if err != nil {
				log.Debug("token validation failed", sl.Err(err))
				if errors.Is(err, session.ErrInvalidToken) {
					w.WriteHeader(http.StatusBadRequest)
					render.JSON(w, r, response.Fail(http.StatusBadRequest,
						session.ErrInvalidToken.Error(), err, dev))
					return
				}
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Fail(http.StatusNotFound,
					"invalid token", err, dev))
				return
			}

			ctx := context.WithValue(r.Context(), User, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
