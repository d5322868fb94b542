package models

import "time"

// User представляет зарегистрированного пользователя сервиса.
// Username хранится уже приведённым к нижнему регистру, поэтому
// уникальность по нему в базе получается регистронезависимой.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное, в нижнем регистре)
	PasswordHash string    // Хэш пароля пользователя
	CreatedAt    time.Time // Дата регистрации
}
