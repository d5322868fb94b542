// Package list реализует HTTP-обработчик постраничного вывода и поиска
// категорий текущего пользователя.
//
// Параметры запроса: q — подстрока для регистронезависимого поиска по
// имени, page — номер страницы с единицы, per_page — размер страницы,
// зажимаемый в настроенный диапазон. Страница за пределами выдачи —
// пустой список, а не ошибка.
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

// Service описывает интерфейс бизнес-логики списка категорий.
type Service interface {
	List(ctx context.Context, ownerUID string, filter models.ListFilter) ([]*models.Category, int, error)
}

// Handler управляет HTTP-запросами на список категорий.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики категорий
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список категорий
// @Description Возвращает страницу категорий текущего пользователя; q ищет подстроку в имени.
// @Tags Categories
// @Produce  json
// @Security BearerAuth
// @Param q query string false "Поисковая подстрока"
// @Param page query int false "Номер страницы, начиная с 1"
// @Param per_page query int false "Размер страницы"
// @Success 200 {object} response.Response "Страница категорий"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(r.URL.Query().Get("per_page"))
	if err != nil {
		perPage = 0
	}
	filter := models.ListFilter{
		Q:       r.URL.Query().Get("q"),
		Page:    page,
		PerPage: perPage,
	}

	ownerUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || ownerUID == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	categories, total, err := h.service.List(r.Context(), ownerUID, filter)
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list categories"))
		return
	}

	log.Info("listed categories", slog.Int("count", len(categories)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"total":      total,
		"count":      len(categories),
		"categories": categories,
	}))
}
