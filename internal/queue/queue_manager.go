package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/staking-reward-ledger/internal/config"
)

const (
	queueTypeArg      = "x-queue-type"
	defaultQueueType  = "quorum"
	contentTypeJSON   = "application/json"
	amqpSchemePrefix  = "amqp://"
	amqpsSchemePrefix = "amqps://"
)

// QueueManager publishes ledger events to a RabbitMQ queue.
type QueueManager struct {
	cfg *config.QueueConfig

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

var _ Publisher = (*QueueManager)(nil)

func NewQueueManager(cfg *config.QueueConfig) (*QueueManager, error) {
	if cfg == nil {
		return nil, errors.New("nil queue config")
	}

	qm := &QueueManager{cfg: cfg}
	if err := qm.connect(); err != nil {
		return nil, err
	}
	return qm, nil
}

func (qm *QueueManager) amqpURL() string {
	url := qm.cfg.Url
	for _, prefix := range []string{amqpSchemePrefix, amqpsSchemePrefix} {
		if len(url) >= len(prefix) && url[:len(prefix)] == prefix {
			return prefix + qm.cfg.QueueUser + ":" + qm.cfg.QueuePassword + "@" + url[len(prefix):]
		}
	}
	return amqpSchemePrefix + qm.cfg.QueueUser + ":" + qm.cfg.QueuePassword + "@" + url
}

// connect must be called with mu held or before the manager is shared.
func (qm *QueueManager) connect() error {
	conn, err := amqp.Dial(qm.amqpURL())
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	queueType := qm.cfg.QueueType
	if queueType == "" {
		queueType = defaultQueueType
	}
	_, err = channel.QueueDeclare(
		qm.cfg.QueueName,
		true,  // durable
		false, // auto delete
		false, // exclusive
		false, // no wait
		amqp.Table{queueTypeArg: queueType},
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", qm.cfg.QueueName, err)
	}

	qm.conn = conn
	qm.channel = channel
	return nil
}

func (qm *QueueManager) Publish(ctx context.Context, ev *LedgerEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger event: %w", err)
	}

	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.conn == nil || qm.conn.IsClosed() {
		log.Ctx(ctx).Warn().Msg("rabbitmq connection closed, reconnecting")
		if err := qm.connect(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.QueueProcessingTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(ctx,
		"",               // default exchange
		qm.cfg.QueueName, // routing key
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			ContentType:  contentTypeJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", ev.EventType, err)
	}
	return nil
}

func (qm *QueueManager) Ping() error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.conn == nil || qm.conn.IsClosed() {
		return errors.New("rabbitmq connection is closed")
	}
	return nil
}

func (qm *QueueManager) Close() error {
	qm.mu.Lock()
	defer qm.mu.Unlock()

	if qm.conn == nil {
		return nil
	}
	if qm.channel != nil {
		if err := qm.channel.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close rabbitmq channel")
		}
	}
	err := qm.conn.Close()
	qm.conn = nil
	qm.channel = nil
	return err
}
