package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerUID string, filter models.ListFilter) ([]*models.Category, int, error) {
	args := m.Called(ctx, ownerUID, filter)
	if res := args.Get(0); res != nil {
		return res.([]*models.Category), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	const ownerUID = "owner-uid-1"

	tests := []struct {
		name           string
		url            string
		withIdentity   bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:         "страница категорий с поиском",
			url:          "/categories?q=soup&page=2&per_page=5",
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, ownerUID, models.ListFilter{Q: "soup", Page: 2, PerPage: 5}).
					Return([]*models.Category{{ID: 1, Name: "soups"}}, 6, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total":6`,
		},
		{
			name:         "некорректные параметры страницы заменяются значениями по умолчанию",
			url:          "/categories?page=abc&per_page=xyz",
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, ownerUID, models.ListFilter{Page: 1, PerPage: 0}).
					Return([]*models.Category{}, 0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"count":0`,
		},
		{
			name:           "нет идентификации пользователя",
			url:            "/categories",
			withIdentity:   false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:         "ошибка сервиса",
			url:          "/categories",
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, ownerUID, mock.Anything).
					Return(nil, 0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not list categories"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(MockService)
			tt.setupMock(serviceMock)

			handler := New(logger, serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.withIdentity {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserUID, ownerUID))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)

			serviceMock.AssertExpectations(t)
		})
	}
}
