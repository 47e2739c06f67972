// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/athena-accounts/internal/config"
	"github.com/MKhiriev/athena-accounts/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the server-side persistence dependencies.
//
// AccountViewCache is nil when no cache address is configured.
type Storages struct {
	AccountRepository AccountRepository
	AccountViewCache  AccountViewCache

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies pending migrations and, when a
// cache address is configured, connects to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		AccountRepository: NewAccountRepository(db, log),
		db:                db,
	}

	if cfg.Cache.Address == "" {
		log.Info().Str("func", "NewStorages").Msg("account view cache is disabled")
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Cache, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	storages.redis = client
	storages.AccountViewCache = NewAccountViewCache(client, cfg.Cache.TTL)

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}

	return errors.Join(errs...)
}
