// Package create реализует HTTP-обработчик создания категорий.
//
// Handler принимает JSON с данными категории, валидирует их, извлекает
// владельца из контекста и делегирует создание бизнес-логике. Повтор
// имени в пределах владельца возвращает конфликт.
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
	categoryservice "github.com/saharovdm/recipe-catalog/internal/services/category"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики создания категории.
type Service interface {
	Create(ctx context.Context, ownerUID string, req models.DummyCategory) (*models.Category, error)
}

// Handler управляет HTTP-запросами на создание категорий.
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
// @Summary Создать категорию
// @Description Создает категорию текущего пользователя. Имя уникально в пределах пользователя.
// @Tags Categories
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyCategory true "Данные новой категории"
// @Success 201 {object} response.Response "Категория создана"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Имя категории занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /categories [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyCategory
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

	category, err := h.service.Create(r.Context(), ownerUID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyExists):
			log.Info("category name already exists")
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("category already exists"))
		case errors.Is(err, categoryservice.ErrInvalidName):
			log.Info("invalid category name or description")
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("name and description can contain only letters, spaces and basic punctuation"))
		default:
			log.Error("failed to create category", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not create category"))
		}
		return
	}

	log.Info("category created", slog.Int("id", category.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(category))
}
