package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saharovdm/recipe-catalog/internal/models"
)

// CreateRecipe вставляет новый рецепт и возвращает его вместе с
// идентификатором и отметками времени. Нарушение внешнего ключа по
// category_id транслируется в ErrInvalidCategory.
func (s *Storage) CreateRecipe(ctx context.Context, recipe models.Recipe) (*models.Recipe, error) {
	const op = "storage.CreateRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO recipes (name, ingredients, category_id, owner_uid)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, created_at, modified_at`
	err := s.DB.QueryRowContext(ctx, query,
		recipe.Name, recipe.Ingredients, recipe.CategoryID, recipe.OwnerUID).
		Scan(&recipe.ID, &recipe.CreatedAt, &recipe.ModifiedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCategory)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &recipe, nil
}

// GetRecipe возвращает рецепт по ID в пределах владельца.
func (s *Storage) GetRecipe(ctx context.Context, ownerUID string, id int) (*models.Recipe, error) {
	const op = "storage.GetRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, ingredients, category_id, owner_uid, created_at, modified_at
			  FROM recipes
			  WHERE id = $1 AND owner_uid = $2`
	r := &models.Recipe{}
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&r.ID, &r.Name, &r.Ingredients, &r.CategoryID,
		&r.OwnerUID, &r.CreatedAt, &r.ModifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// UpdateRecipe перезаписывает поля рецепта владельца и возвращает
// обновлённую запись.
func (s *Storage) UpdateRecipe(ctx context.Context, recipe models.Recipe) (*models.Recipe, error) {
	const op = "storage.UpdateRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE recipes
			  SET name = $1, ingredients = $2, category_id = $3, modified_at = now()
			  WHERE id = $4 AND owner_uid = $5
			  RETURNING id, name, ingredients, category_id, owner_uid, created_at, modified_at`
	r := &models.Recipe{}
	err := s.DB.QueryRowContext(ctx, query,
		recipe.Name, recipe.Ingredients, recipe.CategoryID, recipe.ID, recipe.OwnerUID).
		Scan(&r.ID, &r.Name, &r.Ingredients, &r.CategoryID, &r.OwnerUID,
			&r.CreatedAt, &r.ModifiedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCategory)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// DeleteRecipe удаляет рецепт владельца по ID.
func (s *Storage) DeleteRecipe(ctx context.Context, ownerUID string, id int) error {
	const op = "storage.DeleteRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM recipes WHERE id = $1 AND owner_uid = $2`
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

// ListRecipes возвращает страницу рецептов владельца и общее число строк
// под тем же фильтром. categoryID > 0 дополнительно ограничивает выдачу
// одной категорией; q ищет подстроку в имени без учёта регистра.
func (s *Storage) ListRecipes(ctx context.Context, ownerUID string, categoryID int, q string, limit, offset int) ([]*models.Recipe, int, error) {
	const op = "storage.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, ingredients, category_id, owner_uid, created_at, modified_at
			  FROM recipes
			  WHERE owner_uid = $1
			      AND ($2 = 0 OR category_id = $2)
			      AND ($3 = '' OR name ILIKE '%' || $3 || '%')
			  ORDER BY created_at, id
			  LIMIT $4 OFFSET $5`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, categoryID, q, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		var r models.Recipe
		if err = rows.Scan(&r.ID, &r.Name, &r.Ingredients, &r.CategoryID,
			&r.OwnerUID, &r.CreatedAt, &r.ModifiedAt); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	var total int
	countQuery := `SELECT COUNT(*)
				   FROM recipes
				   WHERE owner_uid = $1
				       AND ($2 = 0 OR category_id = $2)
				       AND ($3 = '' OR name ILIKE '%' || $3 || '%')`
	if err = s.DB.QueryRowContext(ctx, countQuery, ownerUID, categoryID, q).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return result, total, nil
}
