// Package auth содержит логику бизнес-уровня для регистрации,
// аутентификации и управления сессиями пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	jwtlib "github.com/saharovdm/recipe-catalog/internal/lib/jwt"
	"github.com/saharovdm/recipe-catalog/internal/lib/password"
	"github.com/saharovdm/recipe-catalog/internal/lib/sl"
	"github.com/saharovdm/recipe-catalog/internal/models"
	"github.com/saharovdm/recipe-catalog/internal/storage/repository"
)

// Ошибки аутентификации. Обработчики переводят их все в один ответ 401,
// не раскрывая клиенту, какая именно проверка не прошла.
var (
	// ErrInvalidCredentials — неизвестный пользователь или неверный пароль.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrUsernameTaken — имя пользователя уже занято.
	ErrUsernameTaken = errors.New("auth: username already taken")
	// ErrInvalidToken — токен не прошёл проверку подписи, срока или отзыва.
	ErrInvalidToken = errors.New("auth: invalid token")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// UpdateUserPassword заменяет хэш пароля пользователя.
	UpdateUserPassword(ctx context.Context, userUID, passwordHash string) error
}

// TokenBlacklist описывает реестр отозванных токенов.
type TokenBlacklist interface {
	// Revoke помещает jti в реестр на срок ttl; операция идемпотентна.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	// IsRevoked сообщает, отозван ли токен с данным jti.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Service отвечает за регистрацию, авторизацию, выпуск и отзыв JWT.
type Service struct {
	users     UserRepository
	blacklist TokenBlacklist
	jwtMaker  jwtlib.Maker
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, blacklist TokenBlacklist, jwtMaker jwtlib.Maker, log *slog.Logger) *Service {
	return &Service{
		users:     users,
		blacklist: blacklist,
		jwtMaker:  jwtMaker,
		log:       log,
	}
}

// NormalizeUsername приводит имя пользователя к каноническому виду:
// без крайних пробелов и в нижнем регистре. Вся уникальность и поиск
// работают по нормализованному имени.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Register создает нового пользователя с хэшированием пароля и возвращает его UID.
// Повторная регистрация занятого имени возвращает ErrUsernameTaken.
// Пароль в открытом виде никогда не логируется и не сохраняется.
func (s *Service) Register(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     NormalizeUsername(username),
		PasswordHash: hashed,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("username", user.Username))
	return uid, nil
}

// Login проверяет пароль пользователя и выпускает JWT сессии.
// Неизвестное имя и неверный пароль снаружи неразличимы; при отсутствии
// пользователя всё равно выполняется сравнение с фиктивным хешем, чтобы
// по времени ответа нельзя было понять, существует ли имя.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (string, error) {
	const op = "services.auth.Login"

	user, err := s.users.GetUserByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			password.CompareDummy(rawPassword)
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	token, err := s.jwtMaker.GenerateToken(user.Username, user.UID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// Logout отзывает предъявленный токен: его jti попадает в реестр на
// оставшийся срок жизни токена. Другие сессии того же пользователя
// продолжают действовать.
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	const op = "services.auth.Logout"

	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("token revoked", slog.String("username", claims.Username))
	return nil
}

// ValidateToken проверяет JWT: подпись, срок действия и отсутствие jti
// в реестре отозванных. Возвращает пользователя, от имени которого
// выпущен токен.
func (s *Service) ValidateToken(ctx context.Context, tokenStr string) (*models.User, error) {
	const op = "services.auth.ValidateToken"

	claims, err := s.jwtMaker.ParseToken(tokenStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return &models.User{
		UID:      claims.Subject,
		Username: claims.Username,
	}, nil
}

// ChangePassword повторно проверяет старый пароль и заменяет хэш на новый.
func (s *Service) ChangePassword(ctx context.Context, userUID, oldPassword, newPassword string) error {
	const op = "services.auth.ChangePassword"

	user, err := s.users.GetUser(ctx, userUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, oldPassword); err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.users.UpdateUserPassword(ctx, userUID, hashed); err != nil {
		s.log.Error("failed to update password hash", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("password changed", slog.String("username", user.Username))
	return nil
}
