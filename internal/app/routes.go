// Package app предоставляет маршруты приложения каталога.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/product-catalog/internal/config"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/product-catalog/internal/http/handlers/auth/logout"
	groupcreate "github.com/magabrotheeeer/product-catalog/internal/http/handlers/group/create"
	grouplist "github.com/magabrotheeeer/product-catalog/internal/http/handlers/group/list"
	productcreate "github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/read"
	productremove "github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/remove"
	productupdate "github.com/magabrotheeeer/product-catalog/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/product-catalog/internal/http/middlewarectx"
	catalogservice "github.com/magabrotheeeer/product-catalog/internal/services/catalog"
	sessionservice "github.com/magabrotheeeer/product-catalog/internal/services/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	sessionService *sessionservice.Service, catalogService *catalogservice.Service) {
	dev := !cfg.IsProduction()

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.Metrics,
	)

	// Проверочный маршрут, живёт со времён первой версии фронтенда.
	r.Get("/hello", func(w http.ResponseWriter, req *http.Request) {
		render.JSON(w, req, map[string]any{"message": "Hello Yeah!"})
	})

	// Открытые конечные точки
	r.Post("/login", login.New(logger, sessionService, dev).ServeHTTP)

	// Группа с проверкой токена сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.VerifyToken(sessionService, logger, dev))
		r.Post("/logout", logout.New(logger, sessionService, dev).ServeHTTP)
		r.Get("/product-groups", grouplist.New(logger, catalogService, dev).ServeHTTP)
		r.Post("/product-groups", groupcreate.New(logger, catalogService, dev).ServeHTTP)
		r.Get("/products/{groupId}", productlist.New(logger, catalogService, dev).ServeHTTP)
		r.Get("/product/{groupId}/{productId}", productread.New(logger, catalogService, dev).ServeHTTP)
		r.Post("/products", productcreate.New(logger, catalogService, dev).ServeHTTP)
		r.Put("/products/{productId}", productupdate.New(logger, catalogService, dev).ServeHTTP)
		r.Delete("/products/{productId}", productremove.New(logger, catalogService, dev).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
