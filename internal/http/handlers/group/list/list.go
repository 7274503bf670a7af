// Package list реализует HTTP-обработчик списка групп товаров.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/product-catalog/internal/http/response"
	"github.com/magabrotheeeer/product-catalog/internal/lib/sl"
	"github.com/magabrotheeeer/product-catalog/internal/models"
)

// Service описывает интерфейс каталога для чтения групп.
type Service interface {
	ListGroups(ctx context.Context) ([]*models.ProductGroup, error)
}

// Handler обрабатывает HTTP-запросы списка групп товаров.
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
// @Summary Список групп товаров
// @Description Возвращает все группы товаров в порядке возрастания id.
// @Tags ProductGroups
// @Produce  json
// @Param X-Token header string true "Токен сессии"
// @Success 200 {object} map[string]any "Список групп"
// @Failure 500 {object} response.Failure "Ошибка сервера"
// @Router /product-groups [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.group.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		log.Error("failed to list product groups", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Fail(http.StatusInternalServerError,
			"failed to fetch product groups", err, h.dev))
		return
	}
	if groups == nil {
		groups = []*models.ProductGroup{}
	}

	log.Info("product groups listed", slog.Int("count", len(groups)))
	render.JSON(w, r, response.OK(map[string]any{
		"product_groups": groups,
	}))
}
