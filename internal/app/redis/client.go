package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/internal/app/config"
	"backend/internal/app/ds"

	"github.com/go-redis/redis/v8"
)

const (
	sweetListKey = "sweets:all"
	// Короткий TTL: кеш переживает всплеск чтений каталога,
	// но не успевает разойтись с БД надолго даже без инвалидации
	sweetListTTL = 30 * time.Second
)

var ErrCacheMiss = errors.New("cache miss")

// Client — кеш каталога поверх Redis. Не источник истины: любой сбой
// кеша обработчики переживают походом в БД.
type Client struct {
	cfg    config.RedisConfig
	client *redis.Client
}

func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Username:    cfg.User,
		Password:    cfg.Password,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: cfg.ReadTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &Client{cfg: cfg, client: client}, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GetSweetList возвращает закешированный каталог или ErrCacheMiss
func (c *Client) GetSweetList(ctx context.Context) ([]ds.Sweet, error) {
	data, err := c.client.Get(ctx, sweetListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var sweets []ds.Sweet
	if err := json.Unmarshal(data, &sweets); err != nil {
		return nil, err
	}
	return sweets, nil
}

func (c *Client) SetSweetList(ctx context.Context, sweets []ds.Sweet) error {
	data, err := json.Marshal(sweets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, sweetListKey, data, sweetListTTL).Err()
}

// InvalidateSweetList сбрасывает кеш; дёргается после каждой мутации склада
func (c *Client) InvalidateSweetList(ctx context.Context) error {
	return c.client.Del(ctx, sweetListKey).Err()
}
