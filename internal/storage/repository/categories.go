package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saharovdm/recipe-catalog/internal/models"
)

// CreateCategory вставляет новую категорию и возвращает её вместе с
// идентификатором и отметками времени, проставленными базой.
func (s *Storage) CreateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	const op = "storage.CreateCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO categories (name, description, owner_uid)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, modified_at`
	err := s.DB.QueryRowContext(ctx, query,
		category.Name, category.Description, category.OwnerUID).
		Scan(&category.ID, &category.CreatedAt, &category.ModifiedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &category, nil
}

// GetCategory возвращает категорию по ID в пределах владельца.
// Чужая или отсутствующая категория — одинаково ErrNotFound.
func (s *Storage) GetCategory(ctx context.Context, ownerUID string, id int) (*models.Category, error) {
	const op = "storage.GetCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, owner_uid, created_at, modified_at
			  FROM categories
			  WHERE id = $1 AND owner_uid = $2`
	c := &models.Category{}
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.OwnerUID,
		&c.CreatedAt, &c.ModifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// UpdateCategory перезаписывает имя и описание категории владельца и
// возвращает обновлённую запись. Слияние частичного обновления с текущими
// значениями выполняет сервисный слой.
func (s *Storage) UpdateCategory(ctx context.Context, category models.Category) (*models.Category, error) {
	const op = "storage.UpdateCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE categories
			  SET name = $1, description = $2, modified_at = now()
			  WHERE id = $3 AND owner_uid = $4
			  RETURNING id, name, description, owner_uid, created_at, modified_at`
	c := &models.Category{}
	err := s.DB.QueryRowContext(ctx, query,
		category.Name, category.Description, category.ID, category.OwnerUID).
		Scan(&c.ID, &c.Name, &c.Description, &c.OwnerUID, &c.CreatedAt, &c.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// DeleteCategory удаляет категорию владельца; рецепты категории удаляются
// каскадно внешним ключом в том же операторе, так что частичного удаления
// не бывает.
func (s *Storage) DeleteCategory(ctx context.Context, ownerUID string, id int) error {
	const op = "storage.DeleteCategory"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM categories WHERE id = $1 AND owner_uid = $2`
	result, err := s.DB.ExecContext(ctx, query, id, ownerUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListCategories возвращает страницу категорий владельца и общее число
// строк под тем же фильтром. Пустая строка q отключает поиск, иначе
// выполняется регистронезависимый поиск подстроки по имени.
// Порядок выдачи — порядок создания, стабильный между вызовами.
func (s *Storage) ListCategories(ctx context.Context, ownerUID, q string, limit, offset int) ([]*models.Category, int, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, owner_uid, created_at, modified_at
			  FROM categories
			  WHERE owner_uid = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%')
			  ORDER BY created_at, id
			  LIMIT $3 OFFSET $4`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, q, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Category
	for rows.Next() {
		var c models.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.OwnerUID,
			&c.CreatedAt, &c.ModifiedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	countQuery := `SELECT COUNT(*)
				   FROM categories
				   WHERE owner_uid = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%')`
	if err = s.DB.QueryRowContext(ctx, countQuery, ownerUID, q).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}
