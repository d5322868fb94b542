// Package category содержит бизнес-логику работы с категориями рецептов:
// создание, чтение, обновление, удаление и постраничный вывод с поиском.
// Все операции выполняются в пределах одного владельца.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/saharovdm/recipe-catalog/internal/config"
	"github.com/saharovdm/recipe-catalog/internal/lib/validate"
	"github.com/saharovdm/recipe-catalog/internal/models"
)

// ErrInvalidName возвращается, когда имя или описание категории не
// проходит проверку формата после нормализации.
var ErrInvalidName = errors.New("category: invalid name or description")

// Repository определяет методы для работы с категориями в хранилище.
type Repository interface {
	// CreateCategory добавляет новую категорию и возвращает её с ID и отметками времени.
	CreateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	// GetCategory возвращает категорию владельца по ID.
	GetCategory(ctx context.Context, ownerUID string, id int) (*models.Category, error)
	// UpdateCategory перезаписывает категорию владельца и возвращает её.
	UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error)
	// DeleteCategory удаляет категорию владельца вместе с её рецептами.
	DeleteCategory(ctx context.Context, ownerUID string, id int) error
	// ListCategories возвращает страницу категорий владельца и общее число строк.
	ListCategories(ctx context.Context, ownerUID, q string, limit, offset int) ([]*models.Category, int, error)
}

// Service реализует бизнес-логику работы с категориями.
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

// normalizeName приводит имя к каноническому виду: trim + нижний регистр.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create нормализует поля, проверяет формат и сохраняет категорию.
// Повтор имени в пределах владельца отклоняет ограничение уникальности
// в базе — оно и есть источник истины при гонке одновременных создании.
func (s *Service) Create(ctx context.Context, ownerUID string, req models.DummyCategory) (*models.Category, error) {
	const op = "services.category.Create"

	name := normalizeName(req.Name)
	description := strings.TrimSpace(req.Description)
	if !validate.Name(name) || !validate.Details(description) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	created, err := s.repo.CreateCategory(ctx, models.Category{
		Name:        name,
		Description: description,
		OwnerUID:    ownerUID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created new category", slog.Int("id", created.ID))
	return created, nil
}

// Read возвращает категорию владельца по ID.
func (s *Service) Read(ctx context.Context, ownerUID string, id int) (*models.Category, error) {
	const op = "services.category.Read"

	category, err := s.repo.GetCategory(ctx, ownerUID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return category, nil
}

// Update выполняет частичное обновление: пустые поля запроса сохраняют
// прежние значения. Итоговое имя заново проверяется на формат, а его
// уникальность в пределах владельца — ограничением в базе.
func (s *Service) Update(ctx context.Context, ownerUID string, id int, req models.UpdateCategoryRequest) (*models.Category, error) {
	const op = "services.category.Update"

	current, err := s.repo.GetCategory(ctx, ownerUID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	name := current.Name
	if req.Name != "" {
		name = normalizeName(req.Name)
	}
	description := current.Description
	if req.Description != "" {
		description = strings.TrimSpace(req.Description)
	}
	if !validate.Name(name) || !validate.Details(description) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidName)
	}

	updated, err := s.repo.UpdateCategory(ctx, models.Category{
		ID:          id,
		Name:        name,
		Description: description,
		OwnerUID:    ownerUID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated category", slog.Int("id", id))
	return updated, nil
}

// Delete удаляет категорию владельца; её рецепты удаляются каскадно.
func (s *Service) Delete(ctx context.Context, ownerUID string, id int) error {
	const op = "services.category.Delete"

	if err := s.repo.DeleteCategory(ctx, ownerUID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted category", slog.Int("id", id))
	return nil
}

// List возвращает страницу категорий владельца и общее число строк под
// фильтром. Поиск по q — регистронезависимое вхождение подстроки в имя,
// возвращаются все совпадения. Страница за пределами выдачи — пустой
// список, а не ошибка.
func (s *Service) List(ctx context.Context, ownerUID string, filter models.ListFilter) ([]*models.Category, int, error) {
	const op = "services.category.List"

	filter = filter.Normalize(s.pag.MinPerPage, s.pag.MaxPerPage, s.pag.DefaultPerPage)
	q := normalizeName(filter.Q)
	categories, total, err := s.repo.ListCategories(ctx, ownerUID, q, filter.PerPage, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return categories, total, nil
}
