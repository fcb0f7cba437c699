package user

import (
	"context"

	"github.com/go-faster/errors"
)

// Entity is a user record shaped for persistence.
type Entity struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Saver persists entities. storage.Repository implementations satisfy it.
type Saver interface {
	Save(ctx context.Context, e Entity) error
}

// Save persists a copy of the entity through s.
func (e *Entity) Save(ctx context.Context, s Saver) error {
	if err := s.Save(ctx, *e); err != nil {
		return errors.Wrapf(err, "save user %q", e.Username)
	}
	return nil
}
