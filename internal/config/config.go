package config

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config is the CLI configuration, read from YAML with environment overrides.
type Config struct {
	// Environment selects the logger flavour (development or production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	Store struct {
		// Driver is one of memory, sqlite or redis.
		Driver string `env:"STORE_DRIVER" env-default:"memory" yaml:"driver"`

		SQLite struct {
			Path string `env:"STORE_SQLITE_PATH" env-default:"users.db" yaml:"path"`
		} `yaml:"sqlite"`

		Redis struct {
			Addr     string        `env:"STORE_REDIS_ADDR" env-default:"localhost:6379" yaml:"addr"`
			Password string        `env:"STORE_REDIS_PASSWORD" yaml:"password"`
			DB       int           `env:"STORE_REDIS_DB" env-default:"0" yaml:"db"`
			Prefix   string        `env:"STORE_REDIS_PREFIX" env-default:"user:" yaml:"prefix"`
			TTL      time.Duration `env:"STORE_REDIS_TTL" env-default:"0s" yaml:"ttl"`
		} `yaml:"redis"`
	} `yaml:"store"`
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, errors.Wrap(err, "could not read config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEnv builds a config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not read environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects unknown store drivers.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
		return nil
	}
	return errors.Errorf("unknown store driver %q", c.Store.Driver)
}
