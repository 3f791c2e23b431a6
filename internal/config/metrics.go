package config

import (
	"errors"
	"fmt"
	"net"
)

type MetricsConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (cfg *MetricsConfig) Validate() error {
	if cfg.Port < 0 || cfg.Port > 65535 {
		return errors.New("metrics server port must be between 0 and 65535 (inclusive)")
	}

	ip := net.ParseIP(cfg.Host)
	if ip == nil {
		return errors.New("invalid metrics server host")
	}

	return nil
}

func (cfg *MetricsConfig) GetMetricsPort() int {
	return cfg.Port
}

func (cfg *MetricsConfig) GetMetricsAddr() string {
	return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
}
