// Package logout реализует HTTP-обработчик выхода пользователя.
// Удаляет строку сессии по токену из заголовка X-Token, после чего
// токен перестаёт приниматься даже до истечения своего срока.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
)

// Service описывает интерфейс менеджера сессий для выхода.
type Service interface {
	ClearSession(ctx context.Context, token string) error
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log     *slog.Logger
	service Service
	dev     bool
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, dev bool) *Handler {
	return &Handler{
		log:     log,
		service: service,
		dev:     dev,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Удаляет серверную сессию текущего токена. Идемпотентен.
// @Tags Auth
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Success 200 {object} map[string]any "Сессия удалена"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := r.Header.Get(middlewarectx.TokenHeader)
	if err := h.service.ClearSession(r.Context(), token); err != nil {
		log.Error("failed to clear session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to clear session", err, h.dev))
		return
	}

	log.Info("session cleared")
	render.JSON(w, r, response.OK(nil))
}
