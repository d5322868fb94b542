// Package models содержит доменные структуры каталога рецептов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Category представляет категорию рецептов, принадлежащую одному пользователю.
// Имя категории уникально в пределах владельца, но разные пользователи
// могут использовать одинаковые имена.
type Category struct {
	ID          int       `json:"id"`          // Идентификатор категории
	Name        string    `json:"name"`        // Имя категории (нормализовано: trim + нижний регистр)
	Description string    `json:"description"` // Описание категории
	OwnerUID    string    `json:"owner_uid"`   // Идентификатор пользователя-владельца
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
	ModifiedAt  time.Time `json:"modified_at"` // Дата последнего изменения
}

// DummyCategory используется для приёма данных категории из JSON-запроса
// до нормализации и проверки формата в бизнес-логике.
type DummyCategory struct {
	Name        string `json:"name" validate:"required,max=100"`        // Имя категории
	Description string `json:"description" validate:"required,max=256"` // Описание
}

// UpdateCategoryRequest принимает частичное обновление категории:
// пустое поле означает "оставить прежнее значение".
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=100"`        // Новое имя (опционально)
	Description string `json:"description,omitempty" validate:"omitempty,max=256"` // Новое описание (опционально)
}
