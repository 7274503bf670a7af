// Package read реализует HTTP-обработчик чтения одного товара.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

// Service описывает интерфейс каталога для чтения товара.
type Service interface {
	GetProduct(ctx context.Context, groupID, productID int) (*models.Product, error)
}

// Handler обрабатывает HTTP-запросы чтения товара.
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
// @Summary Получить товар
// @Description Возвращает один товар по паре (группа, товар).
// @Tags Products
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param groupId path int true "ID группы товаров"
// @Param productId path int true "ID товара"
// @Success 200 {object} map[string]any "Товар"
// @Failure 400 {object} response.Failure "Некорректные параметры пути"
// @Failure 404 {object} response.Failure "Товар не найден"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /product/{groupId}/{productId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"

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
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		log.Error("invalid product id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail(http.StatusBadRequest, "invalid product id", err, h.dev))
		return
	}

	product, err := h.service.GetProduct(r.Context(), groupID, productID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			log.Info("product not found",
				slog.Int("group_id", groupID), slog.Int("product_id", productID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail(http.StatusNotFound, "product not found", err, h.dev))
			return
		}
		log.Error("failed to fetch product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to fetch product", err, h.dev))
		return
	}

	log.Info("product fetched", slog.Int("id", product.ID))
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
