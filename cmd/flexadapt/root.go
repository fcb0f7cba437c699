package main

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/flexible-adapter/adapters/app"
	"github.com/flexible-adapter/adapters/internal/config"
	"github.com/flexible-adapter/adapters/internal/logger"
	"github.com/flexible-adapter/adapters/storage"
	"github.com/flexible-adapter/adapters/storage/memory"
	"github.com/flexible-adapter/adapters/storage/redis"
	"github.com/flexible-adapter/adapters/storage/sqlite"
	"github.com/flexible-adapter/adapters/user"
)

const (
	sampleUsername = "SampleUser"
	sampleEmail    = "sample@email.com"
)

func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "flexadapt",
		Short:         "Adapts, validates and saves a user entity",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			return withStore(cmd, func(ctx context.Context, store storage.Repository) error {
				a := app.New(user.NewAdapter(), store, cmd.OutOrStdout())
				err := a.Process(ctx, &user.Entity{Username: username, Email: email})
				var verr *user.ValidationError
				if errors.As(err, &verr) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Validation failed: %s\n", verr.Message)
				} else if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
				}
				return err
			})
		},
	}
	cmd.PersistentFlags().StringP("config", "c", "", "Config file path (environment only when empty)")
	cmd.Flags().String("username", sampleUsername, "Username of the entity to process")
	cmd.Flags().String("email", sampleEmail, "Email of the entity to process")

	cmd.AddCommand(findCommand())
	return cmd
}

func findCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <username>",
		Short: "Prints a stored user entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(ctx context.Context, store storage.Repository) error {
				e, err := store.Find(ctx, args[0])
				if err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", e.Username, e.Email)
				return nil
			})
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.LoadEnv()
	}
	return config.Load(path)
}

// withStore loads configuration, sets up logging and opens the configured
// repository for the duration of fn.
func withStore(cmd *cobra.Command, fn func(context.Context, storage.Repository) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	logger.Setup(cfg.Environment)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %s\n", err)
		return err
	}
	defer closeStore()
	return fn(ctx, store)
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Repository, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		r, err := sqlite.Open(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open sqlite store")
		}
		return r, func() {
			if err := r.Close(); err != nil {
				logger.Warn(ctx, "could not close sqlite store", zap.Error(err))
			}
		}, nil
	case config.DriverRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Store.Redis.Addr,
			Password: cfg.Store.Redis.Password,
			DB:       cfg.Store.Redis.DB,
		})
		r := redis.New(client, redis.Options{Prefix: cfg.Store.Redis.Prefix, TTL: cfg.Store.Redis.TTL})
		return r, func() {
			if err := client.Close(); err != nil {
				logger.Warn(ctx, "could not close redis client", zap.Error(err))
			}
		}, nil
	default:
		return memory.New(), func() {}, nil
	}
}
