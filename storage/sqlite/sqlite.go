// Package sqlite persists user entities in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
	"go.uber.org/zap"

	"github.com/flexible-adapter/adapters"
	"github.com/flexible-adapter/adapters/converters/common"
	"github.com/flexible-adapter/adapters/internal/logger"
	"github.com/flexible-adapter/adapters/storage"
	"github.com/flexible-adapter/adapters/user"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS users (
	id              TEXT PRIMARY KEY,
	username        TEXT NOT NULL UNIQUE,
	email           TEXT NULL,
	additional_data TEXT NULL
)`
	upsertUser = `INSERT INTO users (id, username, email, additional_data) VALUES (?, ?, ?, ?)
ON CONFLICT(username) DO UPDATE SET email = excluded.email, additional_data = excluded.additional_data`
	selectUser = `SELECT id, username, email, additional_data FROM users WHERE username = ?`
)

// userRow is the storage shape of a user. Empty emails are stored as NULL.
type userRow struct {
	ID             string
	Username       string
	Email          null.String
	AdditionalData null.JSON
}

// Repository is a database/sql backed storage.Repository.
type Repository struct {
	db      *sql.DB
	adapter *adapters.Adapter
}

var _ storage.Repository = (*Repository)(nil)

// Open opens the SQLite database at path and creates the users table.
func Open(ctx context.Context, path string) (*Repository, error) {
	const op errors.Op = "sqlite.Open"
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	r := New(db)
	if err = r.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, errors.New(op).Err(err)
	}
	return r, nil
}

// New wraps an existing connection pool.
func New(db *sql.DB) *Repository {
	a := adapters.NewBuilder().
		AddConverterForPair(user.Entity{}, userRow{}, "Email", common.TypeToModelStringConverter).
		AddConverterForPair(userRow{}, user.Entity{}, "Email", common.ModelToTypeStringConverter).
		Build()
	return &Repository{db: db, adapter: a}
}

// Migrate creates the users table when it is missing.
func (r *Repository) Migrate(ctx context.Context) error {
	const op errors.Op = "sqlite.Repository.Migrate"
	if _, err := r.db.ExecContext(ctx, createTable); err != nil {
		return errors.New(op).Err(err)
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, e user.Entity) error {
	const op errors.Op = "sqlite.Repository.Save"
	row, err := adapters.Make[userRow](r.adapter, &e)
	if err != nil {
		return errors.New(op).Err(err)
	}
	row.ID = uuid.NewString()
	if _, err = r.db.ExecContext(ctx, upsertUser, row.ID, row.Username, row.Email, row.AdditionalData); err != nil {
		return errors.New(op).Err(err)
	}
	logger.Debug(ctx, "user row saved", zap.String("username", row.Username), zap.Bool("email_null", !row.Email.Valid))
	return nil
}

func (r *Repository) Find(ctx context.Context, username string) (user.Entity, error) {
	const op errors.Op = "sqlite.Repository.Find"
	var row userRow
	err := r.db.QueryRowContext(ctx, selectUser, username).
		Scan(&row.ID, &row.Username, &row.Email, &row.AdditionalData)
	if err == sql.ErrNoRows {
		return user.Entity{}, storage.ErrNotFound
	}
	if err != nil {
		return user.Entity{}, errors.New(op).Err(err)
	}
	e, err := adapters.Make[user.Entity](r.adapter, &row)
	if err != nil {
		return user.Entity{}, errors.New(op).Err(err)
	}
	return e, nil
}

// Close closes the underlying connection pool.
func (r *Repository) Close() error { return r.db.Close() }
