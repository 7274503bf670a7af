// Package login реализует HTTP-обработчик входа пользователя.
//
// Обработчик декодирует JSON с учётными данными, валидирует поля
// и делегирует проверку менеджеру сессий. При успехе возвращает
// подписанный токен; случаи неизвестного пользователя и неверного
// пароля снаружи неразличимы.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/services/session"
)

// Request — структура входных данных для входа.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс менеджера сессий для входа.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы входа.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	service  Service             // Менеджер сессий
	validate *validator.Validate // Валидатор входных данных
	dev      bool                // Включает stack в телах ошибок
}

// New создает новый Handler с указанными логгером и менеджером сессий.
func New(log *slog.Logger, service Service, dev bool) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		dev:      dev,
	}
}

// ServeHTTP godoc
// @Summary Вход пользователя
// @Description Проверяет имя пользователя и пароль, выдаёт токен сессии.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} map[string]any "Токен выдан"
// @Failure 400 {object} response.Failure "Неверные учетные данные"
// @Failure 404 {object} response.Failure "Отсутствуют обязательные поля"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail(http.StatusBadRequest, "invalid request body", err, h.dev))
		return
	}

	// Пустые поля отклоняются до обращения к менеджеру сессий.
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Fail(http.StatusNotFound, "invalid username or password", err, h.dev))
		return
	}

	token, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			log.Info("login rejected", slog.String("username", req.Username))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Fail(http.StatusBadRequest,
				session.ErrInvalidCredentials.Error(), err, h.dev))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"something went wrong", err, h.dev))
		return
	}

	log.Info("login success", slog.String("username", req.Username))
	render.JSON(w, r, response.OK(map[string]any{
		"token": token,
	}))
}
