// Package list реализует HTTP-обработчик постраничного списка рецептов.
//
// Поддерживает фильтрацию по категории (category_id) и поиск по подстроке
// имени (q). Размер страницы ограничивается настройками сервиса.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/http/response"
	"github.com/saharovdm/recipe-catalog/internal/lib/sl"
	"github.com/saharovdm/recipe-catalog/internal/models"
)

// Service описывает интерфейс бизнес-логики списка рецептов.
type Service interface {
	List(ctx context.Context, ownerUID string, categoryID int, filter models.ListFilter) ([]*models.Recipe, int, error)
}

// Handler управляет HTTP-запросами на получение списка рецептов.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики рецептов
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список рецептов
// @Description Возвращает страницу рецептов текущего пользователя с фильтром по категории и поиском по имени.
// @Tags Recipes
// @Produce  json
// @Security BearerAuth
// @Param category_id query int false "Фильтр по ID категории"
// @Param q query string false "Подстрока для поиска по имени"
// @Param page query int false "Номер страницы (с 1)"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} response.Response "Страница рецептов"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры запроса"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /recipes [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.recipe.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ownerUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || ownerUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	categoryID := 0
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		var err error
		categoryID, err = strconv.Atoi(raw)
		if err != nil || categoryID < 1 {
			log.Error("failed to decode category_id", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid category_id parameter"))
			return
		}
	}

	filter := models.ListFilter{Q: r.URL.Query().Get("q")}
	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode page", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid page parameter"))
			return
		}
		filter.Page = page
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			log.Error("failed to decode per_page", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid per_page parameter"))
			return
		}
		filter.PerPage = perPage
	}

	recipes, total, err := h.service.List(r.Context(), ownerUID, categoryID, filter)
	if err != nil {
		log.Error("failed to list recipes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list recipes"))
		return
	}

	log.Info("recipes listed", slog.Int("count", len(recipes)), slog.Int("total", total))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"total":   total,
		"count":   len(recipes),
		"recipes": recipes,
	}))
}
