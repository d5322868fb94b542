// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// GetHash создает bcrypt-хеш пароля для безопасного хранения.
// CompareHash сравнивает исходный bcrypt-хеш с введённым паролем.
// CompareDummy выполняет сравнение с фиктивным хешем, чтобы время ответа
// при неизвестном пользователе не отличалось от времени при известном.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash — заранее посчитанный bcrypt-хеш произвольной строки.
// Используется только для выравнивания времени ответа при логине
// с несуществующим именем пользователя.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
//
// Используется для безопасного хранения паролей в базе данных.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе — ошибку.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CompareDummy сравнивает введённый пароль с фиктивным хешем и всегда
// считается неуспешным. Вызывается, когда пользователь не найден, чтобы
// стоимость bcrypt была оплачена в обеих ветках логина.
func CompareDummy(externalPassword string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(externalPassword))
}
