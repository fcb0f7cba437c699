// Package storage defines where user entities are persisted. Backends live in
// sub-packages and are picked from configuration.
package storage

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/flexible-adapter/adapters/user"
)

// ErrNotFound is returned by Find when no entity has the given username.
var ErrNotFound = errors.New("user not found")

// Repository stores entities keyed by username. Saving an existing username
// replaces the stored record.
type Repository interface {
	user.Saver
	Find(ctx context.Context, username string) (user.Entity, error)
}
