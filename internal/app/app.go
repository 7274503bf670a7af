// Package app собирает приложение каталога: хранилище, миграции,
// сервисы, маршруты и HTTP-сервер с корректным завершением.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/cors"

	"github.com/magabrotheeeer/product-catalog/internal/config"
	jwtlib "github.com/magabrotheeeer/product-catalog/internal/lib/jwt"
	"github.com/magabrotheeeer/product-catalog/internal/migrations"
	catalogservice "github.com/magabrotheeeer/product-catalog/internal/services/catalog"
	sessionservice "github.com/magabrotheeeer/product-catalog/internal/services/session"
	"github.com/magabrotheeeer/product-catalog/internal/storage/repository"
)

// App держит HTTP-сервер и соединение с базой.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
}

// New создает приложение: подключается к базе, применяет миграции,
// выполняет однократную уборку истёкших сессий и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	maker := jwtlib.NewMaker(cfg.SecretKey, cfg.TokenTTL)
	sessionService := sessionservice.New(db, db, maker, cfg.TokenTTL, logger)
	catalogService := catalogservice.New(db, logger)

	// Истёкшие сессии убираются один раз на старте; между стартами
	// просроченная строка отсекается проверкой expires_at при валидации.
	if _, err = sessionService.SweepExpired(ctx); err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, sessionService, catalogService)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.FrontendOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Token"},
	})

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      corsHandler.Handler(router),
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до ошибки или отмены ctx.
// При отмене сервер завершается корректно с таймаутом.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
