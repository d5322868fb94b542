package create

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/saharovdm/recipe-catalog/internal/http/middlewarectx"
	"github.com/saharovdm/recipe-catalog/internal/models"
	categoryservice "github.com/saharovdm/recipe-catalog/internal/services/category"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, ownerUID string, req models.DummyCategory) (*models.Category, error) {
	args := m.Called(ctx, ownerUID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestCreateHandler_ServeHTTP(t *testing.T) {
	const ownerUID = "owner-uid-1"

	validBody := models.DummyCategory{Name: "desserts", Description: "sweet dishes"}

	tests := []struct {
		name           string
		requestBody    interface{}
		withIdentity   bool
		setupMock      func(*MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name:         "successful create",
			requestBody:  validBody,
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, ownerUID, validBody).
					Return(&models.Category{ID: 1, Name: "desserts", Description: "sweet dishes", OwnerUID: ownerUID}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
			wantBody:       `"name":"desserts"`,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			withIdentity:   true,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `"error":"invalid request body"`,
		},
		{
			name:           "validation error - missing name",
			requestBody:    models.DummyCategory{Description: "sweet dishes"},
			withIdentity:   true,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantBody:       "field Name is a required field",
		},
		{
			name:           "missing identity",
			requestBody:    validBody,
			withIdentity:   false,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusUnauthorized,
			wantBody:       `"error":"unauthorized"`,
		},
		{
			name:         "duplicate name",
			requestBody:  validBody,
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, ownerUID, validBody).
					Return(nil, repository.ErrAlreadyExists).Once()
			},
			wantStatusCode: http.StatusConflict,
			wantBody:       `"error":"category already exists"`,
		},
		{
			name:         "invalid name format",
			requestBody:  models.DummyCategory{Name: "soup2", Description: "with digits"},
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, ownerUID, mock.Anything).
					Return(nil, categoryservice.ErrInvalidName).Once()
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantBody:       "name and description can contain only letters",
		},
		{
			name:         "service error",
			requestBody:  validBody,
			withIdentity: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, ownerUID, validBody).
					Return(nil, errors.New("db error")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `"error":"could not create category"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(MockService)
			tt.setupMock(serviceMock)

			handler := New(newNoopLogger(), serviceMock)

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(bodyBytes))
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withIdentity {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, ownerUID)
			}
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)

			serviceMock.AssertExpectations(t)
		})
	}
}
