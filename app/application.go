// Package app runs a user entity through adaptation, validation and
// persistence.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/flexible-adapter/adapters/internal/logger"
	"github.com/flexible-adapter/adapters/user"
)

// Status lines written to the application's output, in this order.
const (
	StatusAdapted   = "Adapting UserEntity to UserDomainObject."
	StatusValidated = "User domain object validated."
	StatusSaved     = "User entity saved."
)

// Application wires an adapter to a storage backend.
type Application struct {
	adapter *user.Adapter
	store   user.Saver
	out     io.Writer
}

// New builds an Application that writes status lines to out.
func New(adapter *user.Adapter, store user.Saver, out io.Writer) *Application {
	return &Application{adapter: adapter, store: store, out: out}
}

// Process adapts e, validates the resulting domain object and saves e.
// A validation failure is returned as a *user.ValidationError and nothing is
// saved.
func (a *Application) Process(ctx context.Context, e *user.Entity) error {
	if e == nil {
		return errors.New("process user: nil entity")
	}
	ctx =logger.WithFields(ctx, zap.String("username", e.Username))

	obj, err := a.adapter.Adapt(e)
	if err != nil {
		return err
	}
	a.status(StatusAdapted)
	logger.Debug(ctx, "entity adapted")

	if err = obj.Validate(); err != nil {
		logger.Warn(ctx, "validation failed", zap.Error(err))
		return err
	}
	a.status(StatusValidated)

	if err = e.Save(ctx, a.store); err != nil {
		logger.Error(ctx, "save failed", zap.Error(err))
		return errors.Wrap(err, "process user")
	}
	a.status(StatusSaved)
	logger.Debug(ctx, "entity saved")
	return nil
}

func (a *Application) status(line string) {
	_, _ = fmt.Fprintln(a.out, line)
}
