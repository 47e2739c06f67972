// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/MKhiriev/athena-accounts/models"
	"github.com/redis/go-redis/v9"
)

const (
	accountViewKeyPrefix = "account:view:"

	// invalidatedMarker replaces a view on Delete. While it lives, fills are
	// refused, so a read that raced an update cannot store the old view.
	invalidatedMarker = "invalidated"
	invalidationTTL   = 10 * time.Second
)

// redisCommands is the subset of [redis.Cmdable] used by the view cache.
type redisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

type accountViewCache struct {
	client redisCommands
	ttl    time.Duration
}

// NewAccountViewCache returns an [AccountViewCache] storing JSON encoded
// views under "account:view:<id>" with the given ttl.
func NewAccountViewCache(client redis.Cmdable, ttl time.Duration) AccountViewCache {
	return &accountViewCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient connects to the Redis server described by cfg and verifies
// the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("error connecting redis")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.Address).Msg("connected to redis successfully")

	return client, nil
}

func accountViewKey(id string) string {
	return accountViewKeyPrefix + id
}

func (c *accountViewCache) Get(ctx context.Context, id string) (models.AccountView, error) {
	raw, err := c.client.Get(ctx, accountViewKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.AccountView{}, ErrCacheMiss
	}
	if err != nil {
		return models.AccountView{}, fmt.Errorf("error reading account view from cache: %w", err)
	}
	if string(raw) == invalidatedMarker {
		return models.AccountView{}, ErrCacheMiss
	}

	var view models.AccountView
	if err = json.Unmarshal(raw, &view); err != nil {
		return models.AccountView{}, fmt.Errorf("error decoding cached account view: %w", err)
	}

	return view, nil
}

// Set stores view only when the key is empty. An existing view or a recent
// invalidation wins.
func (c *accountViewCache) Set(ctx context.Context, view models.AccountView) error {
	raw, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("error encoding account view: %w", err)
	}

	if err = c.client.SetNX(ctx, accountViewKey(view.ID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing account view to cache: %w", err)
	}

	return nil
}

// Delete overwrites the view with a short lived invalidation marker.
func (c *accountViewCache) Delete(ctx context.Context, id string) error {
	if err := c.client.Set(ctx, accountViewKey(id), invalidatedMarker, invalidationTTL).Err(); err != nil {
		return fmt.Errorf("error deleting account view from cache: %w", err)
	}

	return nil
}
