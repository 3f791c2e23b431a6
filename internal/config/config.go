package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Db      DbConfig      `mapstructure:"db"`
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Custody CustodyConfig `mapstructure:"custody"`
	Queue   *QueueConfig  `mapstructure:"queue"`
	Server  ServerConfig  `mapstructure:"server"`
	Poller  PollerConfig  `mapstructure:"poller"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Db.Validate(); err != nil {
		return fmt.Errorf("invalid db config: %w", err)
	}

	if err := cfg.Ledger.Validate(); err != nil {
		return fmt.Errorf("invalid ledger config: %w", err)
	}

	if err := cfg.Custody.Validate(); err != nil {
		return fmt.Errorf("invalid custody config: %w", err)
	}

	// queue is optional, notifications are only logged without it
	if cfg.Queue != nil {
		if err := cfg.Queue.Validate(); err != nil {
			return fmt.Errorf("invalid queue config: %w", err)
		}
	}

	if err := cfg.Server.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	if err := cfg.Poller.Validate(); err != nil {
		return fmt.Errorf("invalid poller config: %w", err)
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics config: %w", err)
	}

	return nil
}

// New returns a fully parsed Config object from a given file.
// Values can be overridden by environment variables, e.g. LEDGER_REWARD_RATE.
func New(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
