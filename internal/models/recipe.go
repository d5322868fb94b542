package models

import "time"

// Recipe представляет рецепт внутри категории. Имя рецепта уникально
// в пределах пары (владелец, категория); категория обязана принадлежать
// тому же пользователю, что и рецепт.
type Recipe struct {
	ID          int       `json:"id"`          // Идентификатор рецепта
	Name        string    `json:"name"`        // Имя рецепта (нормализовано: trim + нижний регистр)
	Ingredients string    `json:"ingredients"` // Описание ингредиентов
	CategoryID  int       `json:"category_id"` // Категория рецепта
	OwnerUID    string    `json:"owner_uid"`   // Идентификатор пользователя-владельца
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
	ModifiedAt  time.Time `json:"modified_at"` // Дата последнего изменения
}

// DummyRecipe используется для приёма данных рецепта из JSON-запроса
// до нормализации и проверки формата в бизнес-логике.
type DummyRecipe struct {
	Name        string `json:"name" validate:"required,max=100"`        // Имя рецепта
	Ingredients string `json:"ingredients" validate:"required,max=256"` // Ингредиенты
	CategoryID  int    `json:"category_id" validate:"required,gt=0"`    // Категория (>0)
}

// UpdateRecipeRequest принимает частичное обновление рецепта:
// нулевое поле означает "оставить прежнее значение".
type UpdateRecipeRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=100"`        // Новое имя (опционально)
	Ingredients string `json:"ingredients,omitempty" validate:"omitempty,max=256"` // Новые ингредиенты (опционально)
	CategoryID  int    `json:"category_id,omitempty" validate:"omitempty,gt=0"`    // Новая категория (опционально)
}
