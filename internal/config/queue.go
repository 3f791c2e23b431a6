package config

import (
	"errors"
	"time"
)

const defaultQueueName = "ledger_events_queue"

type QueueConfig struct {
	QueueUser              string        `mapstructure:"queue_user"`
	QueuePassword          string        `mapstructure:"queue_password"`
	Url                    string        `mapstructure:"url"`
	QueueName              string        `mapstructure:"queue_name"`
	QueueType              string        `mapstructure:"queue_type"`
	QueueProcessingTimeout time.Duration `mapstructure:"processing_timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.QueueUser == "" {
		return errors.New("missing queue user")
	}

	if cfg.QueuePassword == "" {
		return errors.New("missing queue password")
	}

	if cfg.Url == "" {
		return errors.New("missing queue url")
	}

	if cfg.QueueProcessingTimeout <= 0 {
		return errors.New("invalid queue processing timeout")
	}

	if cfg.QueueName == "" {
		cfg.QueueName = defaultQueueName
	}

	if cfg.QueueType != "" && cfg.QueueType != "classic" && cfg.QueueType != "quorum" {
		return errors.New("queue type must be classic or quorum")
	}

	return nil
}
