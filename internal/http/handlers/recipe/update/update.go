// Package update реализует HTTP-обработчик частичного обновления рецепта.
//
// Нулевые поля запроса сохраняют прежние значения; при смене категории
// заново проверяется, что новая категория принадлежит пользователю.
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

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/http/response"
	"github.com/saharovdm/recipe-catalog/internal/lib/sl"
	"github.com/saharovdm/recipe-catalog/internal/models"
	recipeservice "github.com/saharovdm/recipe-catalog/internal/services/recipe"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики обновления рецепта.
type Service interface {
	Update(ctx context.Context, ownerUID string, id int, req models.UpdateRecipeRequest) (*models.Recipe, error)
}

// Handler управляет HTTP-запросами на обновление рецептов.
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
// @Summary Обновить рецепт
// @Description Частично обновляет рецепт: нулевые поля сохраняют прежние значения.
// @Tags Recipes
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID рецепта"
// @Param request body models.UpdateRecipeRequest true "Новые значения полей"
// @Success 200 {object} response.Response "Рецепт обновлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Рецепт или категория не найдены"
// @Failure 409 {object} response.ErrorResponse "Имя рецепта занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var req models.UpdateRecipeRequest
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

	recipe, err := h.service.Update(r.Context(), ownerUID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, recipeservice.ErrInvalidCategory):
			log.Info("category not found", slog.Int("category_id", req.CategoryID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
		case errors.Is(err, repository.ErrNotFound):
			log.Info("recipe not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("recipe not found"))
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Info("recipe name already exists")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("recipe already exists"))
		case errors.Is(err, recipeservice.ErrInvalidName):
			log.Info("invalid recipe name or ingredients")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("name and ingredients can contain only letters, spaces and basic punctuation"))
		default:
			log.Error("failed to update recipe", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update recipe"))
		}
		return
	}

	log.Info("recipe updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(recipe))
}
