package read

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/models"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, ownerUID string, id int) (*models.Category, error) {
	args := m.Called(ctx, ownerUID, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
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
			name:         "успешное чтение категории",
			url:          "/categories/123",
			withIdentity: true,
			setupMock: func(m *MockService) {
				category := &models.Category{
					ID:          123,
					Name:        "desserts",
					Description: "sweet dishes",
					OwnerUID:    ownerUID,
				}
				m.On("Read", mock.Anything, ownerUID, 123).Return(category, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"desserts"`,
		},
		{
			name:           "некорректный id в URL",
			url:            "/categories/abc",
			withIdentity:   true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"failed to decode id from url"`,
		},
		{
			name:           "нет идентификации пользователя",
			url:            "/categories/123",
			withIdentity:   false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:         "чужая категория неотличима от отсутствующей",
			url:          "/categories/777",
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, ownerUID, 777).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"category not found"`,
		},
		{
			name:         "ошибка сервиса",
			url:          "/categories/777",
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, ownerUID, 777).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not read category"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(MockService)
			tt.setupMock(serviceMock)

			handler := New(logger, serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", strings.TrimPrefix(tt.url, "/categories/"))
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.withIdentity {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, ownerUID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)

			serviceMock.AssertExpectations(t)
		})
	}
}
