// Package create реализует HTTP-обработчик создания группы товаров.
//
// Имя группы обязано быть уникальным; занятость имени проверяется
// предварительным запросом, и занятое имя отклоняется с выделенным
// телом ошибки и сообщением на японском — его ожидает фронтенд.
package create

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
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

// DuplicateNameMessage — сообщение фронтенду о занятом имени группы.
const DuplicateNameMessage = "既に該当のグループ名は登録済みです。"

// Request — структура входных данных для создания группы.
type Request struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// Service описывает интерфейс каталога для создания группы.
type Service interface {
	CreateGroup(ctx context.Context, group models.ProductGroup) (*models.ProductGroup, error)
}

// Handler обрабатывает HTTP-запросы создания групп товаров.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
	dev      bool
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, dev bool) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		dev:      dev,
	}
}

// ServeHTTP godoc
// @Summary Создать группу товаров
// @Description Создает новую группу товаров. Имя группы должно быть уникальным.
// @Tags ProductGroups
// @Accept  json
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param request body Request true "Данные новой группы"
// @Success 201 {object} map[string]any "Группа создана"
// @Failure 400 {object} response.DuplicateError "Имя группы уже занято"
// @Failure 404 {object} response.Failure "Отсутствует имя группы"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /product-groups [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.group.create"

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

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Fail(http.StatusNotFound,
			"product group name is required", err, h.dev))
		return
	}

	group, err := h.service.CreateGroup(r.Context(), models.ProductGroup{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateName) {
			log.Info("duplicate group name rejected", slog.String("name", req.Name))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Duplicate(DuplicateNameMessage))
			return
		}
		log.Error("failed to create product group", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to create product group", err, h.dev))
		return
	}

	log.Info("product group created", slog.Int("id", group.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OK(map[string]any{
		"product_group": group,
	}))
}
