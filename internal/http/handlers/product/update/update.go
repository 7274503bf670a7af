// Package update реализует HTTP-обработчик обновления товара.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
	"github.com/magabrotheeeer/product-catalog/internal/services/catalog"
)

// Request — структура входных данных для обновления товара.
type Request struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// Service описывает интерфейс каталога для обновления товара.
type Service interface {
	UpdateProduct(ctx context.Context, productID int, product models.Product) (*models.Product, error)
}

// Handler обрабатывает HTTP-запросы обновления товаров.
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
// @Summary Обновить товар
// @Description Обновляет товар по его ID. Если товара нет, возвращает 404.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param productId path int true "ID товара"
// @Param request body Request true "Новые данные товара"
// @Success 200 {object} map[string]any "Товар обновлён"
// @Failure 400 {object} response.Failure "Некорректный JSON или ID"
// @Failure 404 {object} response.Failure "Товар не найден"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /products/{productId} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

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
		render.JSON(w, r, response.Fail(http.StatusNotFound, "product name is required", err, h.dev))
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			log.Info("product not found", slog.Int("product_id", productID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Fail(http.StatusNotFound, "product not found", err, h.dev))
			return
		}
		log.Error("failed to update product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to update product", err, h.dev))
		return
	}

	log.Info("product updated", slog.Int("id", productID))
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
