// Package create реализует HTTP-обработчик создания товара.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Request — структура входных данных для создания товара.
// Цена и остаток по умолчанию нулевые.
type Request struct {
	ProductGroupID int     `json:"product_group_id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
}

// Service описывает интерфейс каталога для создания товара.
type Service interface {
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
}

// Handler обрабатывает HTTP-запросы создания товаров.
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
// @Summary Создать товар
// @Description Создает товар в указанной группе. Возвращает товар с присвоенным ID.
// @Tags Products
// @Accept  json
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Param request body Request true "Данные нового товара"
// @Success 201 {object} map[string]any "Товар создан"
// @Failure 400 {object} response.Failure "Некорректный JSON"
// @Failure 404 {object} response.Failure "Отсутствуют обязательные поля"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

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
			"product group id and name are required", err, h.dev))
		return
	}

	product, err := h.service.CreateProduct(r.Context(), models.Product{
		ProductGroupID: req.ProductGroupID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Stock:          req.Stock,
	})
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to create product", err, h.dev))
		return
	}

	log.Info("product created", slog.Int("id", product.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OK(map[string]any{
		"product": product,
	}))
}
