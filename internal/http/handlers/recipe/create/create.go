// Package create реализует HTTP-обработчик создания рецептов.
//
// Кроме обычной валидации здесь важна проверка владения: категория
// рецепта обязана принадлежать текущему пользователю, чужая категория
// неотличима от отсутствующей.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/http/response"
	"github.com/saharovdm/recipe-catalog/internal/lib/sl"
	"github.com/saharovdm/recipe-catalog/internal/models"
	recipeservice "github.com/saharovdm/recipe-catalog/internal/services/recipe"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания рецепта.
type Service interface {
	Create(ctx context.Context, ownerUID string, req models.DummyRecipe) (*models.Recipe, error)
}

// Handler управляет HTTP-запросами на создание рецептов.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики рецептов
	validate *validator.Validate // Валидатор структуры входящих данных
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать рецепт
// @Description Создает рецепт в категории текущего пользователя. Имя уникально в пределах категории.
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyRecipe true "Данные нового рецепта"
// @Success 201 {object} response.Response "Рецепт создан"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 409 {object} response.ErrorResponse "Имя рецепта занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyRecipe
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	ownerUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || ownerUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	recipe, err := h.service.Create(r.Context(), ownerUID, req)
	if err != nil {
		switch {
		case errors.Is(err, recipeservice.ErrInvalidCategory):
			log.Info("category not found", slog.Int("category_id", req.CategoryID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Info("recipe name already exists")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("recipe already exists"))
		case errors.Is(err, recipeservice.ErrInvalidName):
			log.Info("invalid recipe name or ingredients")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("name and ingredients can contain only letters, spaces and basic punctuation"))
		default:
			log.Error("failed to create recipe", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create recipe"))
		}
		return
	}

	log.Info("recipe created", slog.Int("id", recipe.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(recipe))
}
