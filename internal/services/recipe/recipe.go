// Package recipe содержит бизнес-логику работы с рецептами. Помимо
// обычного CRUD в пределах владельца здесь проверяется согласованность
// владения: категория рецепта обязана принадлежать тому же пользователю.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saharovdm/recipe-catalog/internal/config"
	"github.com/saharovdm/recipe-catalog/internal/lib/validate"
	"github.com/saharovdm/recipe-catalog/internal/models"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

var (
	// ErrInvalidName возвращается, когда имя или ингредиенты рецепта не
	// проходят проверку формата после нормализации.
	ErrInvalidName = errors.New("recipe: invalid name or ingredients")
	// ErrInvalidCategory возвращается, когда указанная категория не
	// существует или принадлежит другому пользователю.
	ErrInvalidCategory = errors.New("recipe: invalid category")
)

// Repository определяет методы для работы с рецептами в хранилище.
// GetCategory нужен для проверки, что категория рецепта принадлежит
// тому же владельцу.
type Repository interface {
	// CreateRecipe добавляет новый рецепт и возвращает его с ID и отметками времени.
	CreateRecipe(ctx context.Context, recipe models.Recipe) (*models.Recipe, error)
	// GetRecipe возвращает рецепт владельца по ID.
	GetRecipe(ctx context.Context, ownerUID string, id int) (*models.Recipe, error)
	// UpdateRecipe перезаписывает рецепт владельца и возвращает его.
	UpdateRecipe(ctx context.Context, recipe models.Recipe) (*models.Recipe, error)
	// DeleteRecipe удаляет рецепт владельца по ID.
	DeleteRecipe(ctx context.Context, ownerUID string, id int) error
	// ListRecipes возвращает страницу рецептов владельца и общее число строк.
	ListRecipes(ctx context.Context, ownerUID string, categoryID int, q string, limit, offset int) ([]*models.Recipe, int, error)
	// GetCategory возвращает категорию владельца по ID.
	GetCategory(ctx context.Context, ownerUID string, id int) (*models.Category, error)
}

// Service реализует бизнес-логику работы с рецептами.
type Service struct {
	repo Repository
	log  *slog.Logger
	pag  config.Pagination
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger, pag config.Pagination) *Service {
	return &Service{
		repo: repo,
		log:  log,
		pag:  pag,
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// checkCategoryOwned проверяет, что категория существует и принадлежит
// владельцу рецепта. Чужая категория неотличима от отсутствующей.
func (s *Service) checkCategoryOwned(ctx context.Context, ownerUID string, categoryID int) error {
	_, err := s.repo.GetCategory(ctx, ownerUID, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCategory
		}
		return err
	}
	return nil
}

// Create нормализует поля, проверяет формат и владение категорией,
// после чего сохраняет рецепт. Имя уникально в пределах пары
// (владелец, категория); при гонке арбитром служит ограничение в базе.
func (s *Service) Create(ctx context.Context, ownerUID string, req models.DummyRecipe) (*models.Recipe, error) {
	const op = "services.recipe.Create"

	name := normalizeName(req.Name)
	ingredients := strings.TrimSpace(req.Ingredients)
	if !validate.Name(name) || !validate.Details(ingredients) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}
	if err := s.checkCategoryOwned(ctx, ownerUID, req.CategoryID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := s.repo.CreateRecipe(ctx, models.Recipe{
		Name:        name,
		Ingredients: ingredients,
		CategoryID:  req.CategoryID,
		OwnerUID:    ownerUID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new recipe", slog.Int("id", created.ID))
	return created, nil
}

// Read возвращает рецепт владельца по ID.
func (s *Service) Read(ctx context.Context, ownerUID string, id int) (*models.Recipe, error) {
	const op = "services.recipe.Read"

	recipe, err := s.repo.GetRecipe(ctx, ownerUID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return recipe, nil
}

// Update выполняет частичное обновление: нулевые поля запроса сохраняют
// прежние значения. При смене категории заново проверяется владение ею.
func (s *Service) Update(ctx context.Context, ownerUID string, id int, req models.UpdateRecipeRequest) (*models.Recipe, error) {
	const op = "services.recipe.Update"

	current, err := s.repo.GetRecipe(ctx, ownerUID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name := current.Name
	if req.Name != "" {
		name = normalizeName(req.Name)
	}
	ingredients := current.Ingredients
	if req.Ingredients != "" {
		ingredients = strings.TrimSpace(req.Ingredients)
	}
	categoryID := current.CategoryID
	if req.CategoryID != 0 && req.CategoryID != current.CategoryID {
		if err := s.checkCategoryOwned(ctx, ownerUID, req.CategoryID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		categoryID = req.CategoryID
	}
	if !validate.Name(name) || !validate.Details(ingredients) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	updated, err := s.repo.UpdateRecipe(ctx, models.Recipe{
		ID:          id,
		Name:        name,
		Ingredients: ingredients,
		CategoryID:  categoryID,
		OwnerUID:    ownerUID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated recipe", slog.Int("id", id))
	return updated, nil
}

// Delete удаляет рецепт владельца по ID.
func (s *Service) Delete(ctx context.Context, ownerUID string, id int) error {
	const op = "services.recipe.Delete"

	if err := s.repo.DeleteRecipe(ctx, ownerUID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted recipe", slog.Int("id", id))
	return nil
}

// List возвращает страницу рецептов владельца и общее число строк под
// фильтром. categoryID > 0 ограничивает выдачу одной категорией.
func (s *Service) List(ctx context.Context, ownerUID string, categoryID int, filter models.ListFilter) ([]*models.Recipe, int, error) {
	const op = "services.recipe.List"

	filter = filter.Normalize(s.pag.MinPerPage, s.pag.MaxPerPage, s.pag.DefaultPerPage)
	q := normalizeName(filter.Q)
	recipes, total, err := s.repo.ListRecipes(ctx, ownerUID, categoryID, q, filter.PerPage, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return recipes, total, nil
}
