package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// NewRedisClient создает клиент Redis
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisStore хранит токен под ключом в Redis
type RedisStore struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisStore создает хранилище; ttl = 0 означает хранение без срока
func NewRedisStore(client redis.Cmdable, key string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// Get читает токен; отсутствие ключа означает ErrTokenNotFound
func (s *RedisStore) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: get %s: %v", ErrStorage, s.key, err)
	}
	if token == "" {
		return "", ErrTokenNotFound
	}
	return token, nil
}

func (s *RedisStore) Save(ctx context.Context, token string) error {
	if err := s.client.Set(ctx, s.key, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrStorage, s.key, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: del %s: %v", ErrStorage, s.key, err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}
	return nil
}
