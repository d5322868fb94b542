// Package recipecatalog собирает и запускает основное приложение.
package recipecatalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/saharovdm/recipe-catalog/internal/config"
	jwtlib "github.com/saharovdm/recipe-catalog/internal/lib/jwt"
	"github.com/saharovdm/recipe-catalog/internal/migrations"
	authservice "github.com/saharovdm/recipe-catalog/internal/services/auth"
	categoryservice "github.com/saharovdm/recipe-catalog/internal/services/category"
	recipeservice "github.com/saharovdm/recipe-catalog/internal/services/recipe"
	"github.com/saharovdm/recipe-catalog/internal/storage/blacklist"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	blacklist *blacklist.Registry
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	registry, err := blacklist.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, registry, jwtMaker, logger)
	categoryService := categoryservice.New(db, logger, cfg.Pagination)
	recipeService := recipeservice.New(db, logger, cfg.Pagination)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, authService, categoryService, recipeService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		blacklist: registry,
	}, nil
}

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
		a.db.DB.Close()
		if cerr := a.blacklist.Db.Close(); cerr != nil {
			a.logger.Error("failed to close redis client", slog.Any("err", cerr))
		}
		return err
	}
}
