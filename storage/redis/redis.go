// Package redis persists user entities as JSON documents in Redis.
package redis

import (
	"context"
	"time"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/flexible-adapter/adapters/internal/logger"
	"github.com/flexible-adapter/adapters/storage"
	"github.com/flexible-adapter/adapters/user"
)

// DefaultPrefix namespaces user keys.
const DefaultPrefix = "user:"

// Options configure a Repository.
type Options struct {
	Prefix string        // key prefix, DefaultPrefix when empty
	TTL    time.Duration // zero keeps keys forever
}

// Repository is a Redis backed storage.Repository.
type Repository struct {
	client goredis.UniversalClient
	opts   Options
}

var _ storage.Repository = (*Repository)(nil)

func New(client goredis.UniversalClient, opts Options) *Repository {
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	return &Repository{client: client, opts: opts}
}

func (r *Repository) key(username string) string { return r.opts.Prefix + username }

func (r *Repository) Save(ctx context.Context, e user.Entity) error {
	const op errors.Op = "redis.Repository.Save"
	payload, err := json.Marshal(e)
	if err != nil {
		return errors.New(op).Err(err)
	}
	if err = r.client.Set(ctx, r.key(e.Username), payload, r.opts.TTL).Err(); err != nil {
		return errors.New(op).Err(err)
	}
	logger.Debug(ctx, "user stored in redis", zap.String("key", r.key(e.Username)), zap.Duration("ttl", r.opts.TTL))
	return nil
}

func (r *Repository) Find(ctx context.Context, username string) (user.Entity, error) {
	const op errors.Op = "redis.Repository.Find"
	payload, err := r.client.Get(ctx, r.key(username)).Bytes()
	if err == goredis.Nil {
		return user.Entity{}, storage.ErrNotFound
	}
	if err != nil {
		return user.Entity{}, errors.New(op).Err(err)
	}
	var e user.Entity
	if err = json.Unmarshal(payload, &e); err != nil {
		return user.Entity{}, errors.New(op).Err(err)
	}
	return e, nil
}
