// Package recipecatalog предоставляет маршруты для основного приложения.
package recipecatalog

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saharovdm/recipe-catalog/internal/http/handlers/auth/changepassword"
	"github.com/saharovdm/recipe-catalog/internal/http/handlers/auth/login"
	"github.com/saharovdm/recipe-catalog/internal/http/handlers/auth/logout"
	"github.com/saharovdm/recipe-catalog/internal/http/handlers/auth/register"
	categorycreate "github.com/saharovdm/recipe-catalog/internal/http/handlers/category/create"
	categorylist "github.com/saharovdm/recipe-catalog/internal/http/handlers/category/list"
	categoryread "github.com/saharovdm/recipe-catalog/internal/http/handlers/category/read"
	categoryremove "github.com/saharovdm/recipe-catalog/internal/http/handlers/category/remove"
	categoryupdate "github.com/saharovdm/recipe-catalog/internal/http/handlers/category/update"
	"github.com/saharovdm/recipe-catalog/internal/http/handlers/health"
	recipecreate "github.com/saharovdm/recipe-catalog/internal/http/handlers/recipe/create"
	recipelist "github.com/saharovdm/recipe-catalog/internal/http/handlers/recipe/list"
	reciperead "github.com/saharovdm/recipe-catalog/internal/http/handlers/recipe/read"
	reciperemove "github.com/saharovdm/recipe-catalog/internal/http/handlers/recipe/remove"
	recipeupdate "github.com/saharovdm/recipe-catalog/internal/http/handlers/recipe/update"
	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	authservice "github.com/saharovdm/recipe-catalog/internal/services/auth"
	categoryservice "github.com/saharovdm/recipe-catalog/internal/services/category"
	recipeservice "github.com/saharovdm/recipe-catalog/internal/services/recipe"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.Service, categoryService *categoryservice.Service, recipeService *recipeservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Delete("/logout", logout.New(logger, authService).ServeHTTP)
			r.Put("/password", changepassword.New(logger, authService).ServeHTTP)

			r.Post("/categories", categorycreate.New(logger, categoryService).ServeHTTP)
			r.Get("/categories", categorylist.New(logger, categoryService).ServeHTTP)
			r.Get("/categories/{id}", categoryread.New(logger, categoryService).ServeHTTP)
			r.Put("/categories/{id}", categoryupdate.New(logger, categoryService).ServeHTTP)
			r.Delete("/categories/{id}", categoryremove.New(logger, categoryService).ServeHTTP)

			r.Post("/recipes", recipecreate.New(logger, recipeService).ServeHTTP)
			r.Get("/recipes", recipelist.New(logger, recipeService).ServeHTTP)
			r.Get("/recipes/{id}", reciperead.New(logger, recipeService).ServeHTTP)
			r.Put("/recipes/{id}", recipeupdate.New(logger, recipeService).ServeHTTP)
			r.Delete("/recipes/{id}", reciperemove.New(logger, recipeService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
