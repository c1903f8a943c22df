package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"storefront/config"
	"storefront/models"
)

// RedisCartRepository stores the serialized cart under a single fixed key.
type RedisCartRepository struct {
	client *redis.Client
	key    string
}

func NewRedisCartRepository(cfg *config.Config) (*RedisCartRepository, error) {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &RedisCartRepository{client: client, key: cfg.CartKey}, nil
}

func (r *RedisCartRepository) Save(lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.key, data, 0).Err()
}

func (r *RedisCartRepository) Load() ([]models.CartLine, error) {
	data, err := r.client.Get(context.Background(), r.key).Bytes()
	if err != nil {
		return nil, ErrNoSnapshot
	}

	lines := []models.CartLine{}
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, ErrNoSnapshot
	}
	return lines, nil
}

func (r *RedisCartRepository) Close() error {
	return r.client.Close()
}
