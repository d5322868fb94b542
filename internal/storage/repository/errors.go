package repository

import "errors"

// Ошибки уровня хранилища. Сервисы и обработчики проверяют их через
// errors.Is и переводят в ответы клиенту; текст в ответ не попадает.
var (
	// ErrNotFound возвращается, когда запись отсутствует либо принадлежит
	// другому пользователю — снаружи эти случаи неразличимы.
	ErrNotFound = errors.New("storage: not found")
	// ErrAlreadyExists возвращается при нарушении уникальности имени
	// в пределах области владельца.
	ErrAlreadyExists = errors.New("storage: already exists")
	// ErrInvalidCategory возвращается, когда рецепт ссылается на категорию,
	// которой нет у этого пользователя.
	ErrInvalidCategory = errors.New("storage: invalid category")
)
