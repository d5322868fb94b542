package recipe_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saharovdm/recipe-catalog/internal/config"
	"github.com/saharovdm/recipe-catalog/internal/models"
	"github.com/saharovdm/recipe-catalog/internal/services/recipe"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Мок для Repository
type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateRecipe(ctx context.Context, rec models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *RepoMock) GetRecipe(ctx context.Context, ownerUID string, id int) (*models.Recipe, error) {
	args := m.Called(ctx, ownerUID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *RepoMock) UpdateRecipe(ctx context.Context, rec models.Recipe) (*models.Recipe, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *RepoMock) DeleteRecipe(ctx context.Context, ownerUID string, id int) error {
	args := m.Called(ctx, ownerUID, id)
	return args.Error(0)
}

func (m *RepoMock) ListRecipes(ctx context.Context, ownerUID string, categoryID int, q string, limit, offset int) ([]*models.Recipe, int, error) {
	args := m.Called(ctx, ownerUID, categoryID, q, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*models.Recipe), args.Int(1), args.Error(2)
}

func (m *RepoMock) GetCategory(ctx context.Context, ownerUID string, id int) (*models.Category, error) {
	args := m.Called(ctx, ownerUID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func newService(repo *RepoMock) *recipe.Service {
	return recipe.New(repo, newNoopLogger(), config.Pagination{MinPerPage: 5, MaxPerPage: 10, DefaultPerPage: 10})
}

const ownerUID = "owner-uid-1"

var ownedCategory = &models.Category{ID: 3, Name: "soups", OwnerUID: ownerUID}

func TestRecipeService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        models.DummyRecipe
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "successful create",
			req:  models.DummyRecipe{Name: "  Borscht ", Ingredients: "beets, cabbage, 2 carrots", CategoryID: 3},
			setupMocks: func(r *RepoMock) {
				r.On("GetCategory", mock.Anything, ownerUID, 3).Return(ownedCategory, nil).Once()
				r.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(rec models.Recipe) bool {
					return rec.Name == "borscht" &&
						rec.Ingredients == "beets, cabbage, 2 carrots" &&
						rec.CategoryID == 3 &&
						rec.OwnerUID == ownerUID
				})).Return(&models.Recipe{ID: 1, Name: "borscht", CategoryID: 3, OwnerUID: ownerUID}, nil).Once()
			},
		},
		{
			name:       "invalid recipe name",
			req:        models.DummyRecipe{Name: "soup#1", Ingredients: "water", CategoryID: 3},
			setupMocks: func(r *RepoMock) {},
			wantErr:    recipe.ErrInvalidName,
		},
		{
			name: "foreign category",
			req:  models.DummyRecipe{Name: "borscht", Ingredients: "beets", CategoryID: 9},
			setupMocks: func(r *RepoMock) {
				r.On("GetCategory", mock.Anything, ownerUID, 9).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: recipe.ErrInvalidCategory,
		},
		{
			name: "duplicate name in category",
			req:  models.DummyRecipe{Name: "borscht", Ingredients: "beets", CategoryID: 3},
			setupMocks: func(r *RepoMock) {
				r.On("GetCategory", mock.Anything, ownerUID, 3).Return(ownedCategory, nil).Once()
				r.On("CreateRecipe", mock.Anything, mock.Anything).
					Return(nil, repository.ErrAlreadyExists).Once()
			},
			wantErr: repository.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := newService(repo)
			tt.setupMocks(repo)

			got, err := svc.Create(context.Background(), ownerUID, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Update(t *testing.T) {
	current := &models.Recipe{
		ID:          7,
		Name:        "borscht",
		Ingredients: "beets, cabbage",
		CategoryID:  3,
		OwnerUID:    ownerUID,
	}

	tests := []struct {
		name       string
		req        models.UpdateRecipeRequest
		setupMocks func(r *RepoMock)
		wantErr    error
	}{
		{
			name: "rename keeps category without re-check",
			req:  models.UpdateRecipeRequest{Name: "Green Borscht"},
			setupMocks: func(r *RepoMock) {
				r.On("GetRecipe", mock.Anything, ownerUID, 7).Return(current, nil).Once()
				r.On("UpdateRecipe", mock.Anything, mock.MatchedBy(func(rec models.Recipe) bool {
					return rec.ID == 7 && rec.Name == "green borscht" &&
						rec.Ingredients == "beets, cabbage" && rec.CategoryID == 3
				})).Return(&models.Recipe{ID: 7, Name: "green borscht", CategoryID: 3}, nil).Once()
			},
		},
		{
			name: "move to owned category",
			req:  models.UpdateRecipeRequest{CategoryID: 4},
			setupMocks: func(r *RepoMock) {
				r.On("GetRecipe", mock.Anything, ownerUID, 7).Return(current, nil).Once()
				r.On("GetCategory", mock.Anything, ownerUID, 4).
					Return(&models.Category{ID: 4, OwnerUID: ownerUID}, nil).Once()
				r.On("UpdateRecipe", mock.Anything, mock.MatchedBy(func(rec models.Recipe) bool {
					return rec.CategoryID == 4
				})).Return(&models.Recipe{ID: 7, CategoryID: 4}, nil).Once()
			},
		},
		{
			name: "move to foreign category",
			req:  models.UpdateRecipeRequest{CategoryID: 9},
			setupMocks: func(r *RepoMock) {
				r.On("GetRecipe", mock.Anything, ownerUID, 7).Return(current, nil).Once()
				r.On("GetCategory", mock.Anything, ownerUID, 9).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: recipe.ErrInvalidCategory,
		},
		{
			name: "recipe not found",
			req:  models.UpdateRecipeRequest{Name: "new name"},
			setupMocks: func(r *RepoMock) {
				r.On("GetRecipe", mock.Anything, ownerUID, 7).
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: repository.ErrNotFound,
		},
		{
			name: "invalid new ingredients",
			req:  models.UpdateRecipeRequest{Ingredients: "salt; pepper"},
			setupMocks: func(r *RepoMock) {
				r.On("GetRecipe", mock.Anything, ownerUID, 7).Return(current, nil).Once()
			},
			wantErr: recipe.ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := newService(repo)
			tt.setupMocks(repo)

			got, err := svc.Update(context.Background(), ownerUID, 7, tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, got)
			}

			repo.AssertExpectations(t)
		})
	}
}

func TestRecipeService_Delete(t *testing.T) {
	t.Run("successful delete", func(t *testing.T) {
		repo := new(RepoMock)
		svc := newService(repo)

		repo.On("DeleteRecipe", mock.Anything, ownerUID, 7).Return(nil).Once()

		err := svc.Delete(context.Background(), ownerUID, 7)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(RepoMock)
		svc := newService(repo)

		repo.On("DeleteRecipe", mock.Anything, ownerUID, 7).
			Return(repository.ErrNotFound).Once()

		err := svc.Delete(context.Background(), ownerUID, 7)
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRecipeService_List(t *testing.T) {
	t.Run("category filter is passed through", func(t *testing.T) {
		repo := new(RepoMock)
		svc := newService(repo)

		repo.On("ListRecipes", mock.Anything, ownerUID, 3, "borscht", 10, 0).
			Return([]*models.Recipe{{ID: 1, Name: "borscht"}}, 1, nil).Once()

		got, total, err := svc.List(context.Background(), ownerUID, 3, models.ListFilter{Q: "Borscht"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, 1, total)
		repo.AssertExpectations(t)
	})

	t.Run("storage error", func(t *testing.T) {
		repo := new(RepoMock)
		svc := newService(repo)

		repo.On("ListRecipes", mock.Anything, ownerUID, 0, "", 10, 0).
			Return(nil, 0, errors.New("db error")).Once()

		got, total, err := svc.List(context.Background(), ownerUID, 0, models.ListFilter{})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.Zero(t, total)
	})
}
