// Package remove реализует HTTP-обработчик удаления товара.
package remove

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
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

// Service описывает интерфейс каталога для удаления товара.
type Service interface {
	RemoveProduct(ctx context.Context, productID int) error
}

// Handler обрабатывает HTTP-запросы удаления товаров.
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
// @Summary Удалить товар
// @Description Удаляет товар по его ID. Если товара нет, возвращает 404.
// @Tags Products
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param productId path int true "ID товара"
// @Success 200 {object} map[string]any "Товар удалён"
// @Failure 400 {object} response.Failure "Некорректный ID"
// @Failure 404 {object} response.Failure "Товар не найден"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /products/{productId} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		log.Error("invalid product id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Fail(http.StatusBadRequest, "invalid product id", err, h.dev))
		return
	}

	if err := h.service.RemoveProduct(r.Context(), productID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			log.Info("product not found", slog.Int("product_id", productID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail(http.StatusNotFound, "product not found", err, h.dev))
			return
		}
		log.Error("failed to delete product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to delete product", err, h.dev))
		return
	}

	log.Info("product deleted", slog.Int("id", productID))
	render.JSON(w, r, response.OK(nil))
}
