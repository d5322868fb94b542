// Package logout реализует HTTP-обработчик завершения сессии.
//
// Предъявленный токен отзывается по его jti: он немедленно перестает
// проходить проверку, при этом другие токены того же пользователя,
// выданные отдельными входами, продолжают действовать.
package logout

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/saharovdm/recipe-catalog/internal/http/response"
	"github.com/saharovdm/recipe-catalog/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики отзыва токена.
type Service interface {
	Logout(ctx context.Context, tokenStr string) error
}

// Handler обрабатывает HTTP-запросы на выход из системы.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис аутентификации
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Выход из системы
// @Description Отзывает предъявленный токен. Повторный отзыв не является ошибкой.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Сессия завершена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	// Middleware уже проверил заголовок, здесь токен только извлекается.
	tokenStr := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if tokenStr == "" {
		log.Error("authorization header missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid or expired token"))
		return
	}

	if err := h.service.Logout(r.Context(), tokenStr); err != nil {
		log.Error("failed to revoke token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not logout"))
		return
	}

	log.Info("logged out")
	render.JSON(w, r, response.OK())
}
