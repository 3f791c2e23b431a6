package config

import (
	"errors"
	"time"
)

const defaultStatsPollingInterval = 5 * time.Minute

type PollerConfig struct {
	StatsPollingInterval time.Duration `mapstructure:"stats-polling-interval"`
	// StatsWorkers bounds the goroutines computing pending rewards.
	StatsWorkers int `mapstructure:"stats-workers"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.StatsPollingInterval <= 0 {
		cfg.StatsPollingInterval = defaultStatsPollingInterval
	}

	if cfg.StatsWorkers < 0 {
		return errors.New("stats-workers must not be negative")
	}

	return nil
}
