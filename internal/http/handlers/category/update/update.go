// Package update реализует HTTP-обработчик частичного обновления категории.
//
// Пустые поля запроса сохраняют прежние значения; итоговое имя заново
// проверяется на формат и уникальность в пределах владельца.
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
	categoryservice "github.com/saharovdm/recipe-catalog/internal/services/category"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики обновления категории.
type Service interface {
	Update(ctx context.Context, ownerUID string, id int, req models.UpdateCategoryRequest) (*models.Category, error)
}

// Handler управляет HTTP-запросами на обновление категорий.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики категорий
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
// @Summary Обновить категорию
// @Description Частично обновляет категорию: пустые поля сохраняют прежние значения.
// @Tags Categories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path int true "ID категории"
// @Param request body models.UpdateCategoryRequest true "Новые значения полей"
// @Success 200 {object} response.Response "Категория обновлена"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Категория не найдена"
// @Failure 409 {object} response.ErrorResponse "Имя категории занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /categories/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.update"

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

	var req models.UpdateCategoryRequest
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

	category, err := h.service.Update(r.Context(), ownerUID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			log.Info("category not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Info("category name already exists")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("category already exists"))
		case errors.Is(err, categoryservice.ErrInvalidName):
			log.Info("invalid category name or description")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("name and description can contain only letters, spaces and basic punctuation"))
		default:
			log.Error("failed to update category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update category"))
		}
		return
	}

	log.Info("category updated", slog.Int("id", id))
	render.JSON(w, r, response.OKWithData(category))
}
