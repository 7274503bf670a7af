// Package list реализует HTTP-обработчик списка товаров группы.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Service описывает интерфейс каталога для чтения товаров группы.
type Service interface {
	ListProducts(ctx context.Context, groupID int) ([]*models.Product, error)
}

// Handler обрабатывает HTTP-запросы списка товаров.
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
// @Summary Список товаров группы
// @Description Возвращает товары указанной группы вместе с именем группы.
// @Tags Products
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param groupId path int true "ID группы товаров"
// @Success 200 {object} map[string]any "Список товаров"
// @Failure 400 {object} response.Failure "Некорректный ID группы"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /products/{groupId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	groupID, err := strconv.Atoi(chi.URLParam(r, "groupId"))
	if err != nil {
		log.Error("invalid group id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail(http.StatusBadRequest, "invalid group id", err, h.dev))
		return
	}

	products, err := h.service.ListProducts(r.Context(), groupID)
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to fetch products", err, h.dev))
		return
	}
	if products == nil {
		products = []*models.Product{}
	}

	log.Info("products listed", slog.Int("group_id", groupID), slog.Int("count", len(products)))
	render.JSON(w, r, response.OK(map[string]any{
		"products": products,
	}))
}
