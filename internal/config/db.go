package config

import (
	"errors"
	"fmt"
	"net/url"
)

type DbBackend string

const (
	DbBackendMongo  DbBackend = "mongo"
	DbBackendBadger DbBackend = "badger"
	DbBackendMemory DbBackend = "memory"
)

type DbConfig struct {
	Backend  DbBackend `mapstructure:"backend"`
	Username string    `mapstructure:"username"`
	Password string    `mapstructure:"password"`
	DbName   string    `mapstructure:"db-name"`
	Address  string    `mapstructure:"address"`
	// Path is the data directory of the badger backend.
	Path string `mapstructure:"path"`
}

func (cfg *DbConfig) Validate() error {
	switch cfg.Backend {
	case DbBackendMongo, "":
		return cfg.validateMongo()
	case DbBackendBadger:
		if cfg.Path == "" {
			return errors.New("db path is required for the badger backend")
		}
		return nil
	case DbBackendMemory:
		return nil
	default:
		return fmt.Errorf("unsupported db backend %q", cfg.Backend)
	}
}

func (cfg *DbConfig) validateMongo() error {
	if cfg.Username == "" {
		return errors.New("missing db username")
	}

	if cfg.Password == "" {
		return errors.New("missing db password")
	}

	if cfg.Address == "" {
		return errors.New("missing db address")
	}

	if cfg.DbName == "" {
		return errors.New("missing db name")
	}

	u, err := url.Parse(cfg.Address)
	if err != nil {
		return fmt.Errorf("invalid db address: %w", err)
	}

	if u.Scheme != "mongodb" && u.Scheme != "mongodb+srv" {
		return fmt.Errorf("unsupported db address scheme: %s", u.Scheme)
	}

	return nil
}
