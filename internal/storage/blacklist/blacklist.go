// Package blacklist реализует реестр отозванных токенов на Redis.
//
// Ключом служит jti токена, значением — факт присутствия ключа.
// TTL записи равен оставшемуся сроку жизни токена, поэтому реестр
// очищается ровно тогда, когда токен и так перестал бы действовать,
// и не растёт неограниченно.
package blacklist

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/saharovdm/recipe-catalog/internal/config"
)

const keyPrefix = "blacklist:"

// Registry хранит отозванные jti в Redis.
type Registry struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Registry, error) {
	const op = "blacklist.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Registry{Db: db}, nil
}

// Revoke помещает jti в реестр на срок ttl. Операция идемпотентна:
// повторный отзыв уже отозванного или неизвестного jti не является ошибкой.
func (r *Registry) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	const op = "blacklist.Revoke"
	if ttl <= 0 {
		// Токен уже истёк естественным образом, хранить нечего.
		return nil
	}
	if err := r.Db.Set(ctx, keyPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// IsRevoked сообщает, отозван ли токен с данным jti. Проверка выполняется
// на каждом защищённом запросе, поэтому это один O(1) вызов EXISTS.
func (r *Registry) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "blacklist.IsRevoked"
	n, err := r.Db.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return n > 0, nil
}
