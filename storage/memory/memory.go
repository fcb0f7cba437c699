// Package memory is the default, process-local user repository.
package memory

import (
	"context"
	"sync"

	"github.com/flexible-adapter/adapters/storage"
	"github.com/flexible-adapter/adapters/user"
)

// Repository keeps entities in a map. It is safe for concurrent use.
type Repository struct {
	mu    sync.RWMutex
	items map[string]user.Entity
}

var _ storage.Repository = (*Repository)(nil)

func New() *Repository {
	return &Repository{items: make(map[string]user.Entity)}
}

func (r *Repository) Save(ctx context.Context, e user.Entity) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[e.Username] = e
	return nil
}

func (r *Repository) Find(ctx context.Context, username string) (user.Entity, error) {
	if err := ctx.Err(); err != nil {
		return user.Entity{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[username]
	if !ok {
		return user.Entity{}, storage.ErrNotFound
	}
	return e, nil
}

// Len reports how many entities are stored.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
