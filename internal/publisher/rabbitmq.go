// Package publisher announces article lifecycle events on RabbitMQ.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"blog/internal/domain"
)

const (
	ActionCreated = "created"

	exchangeKind   = amqp.ExchangeDirect
	defaultConfirm = 5 * time.Second
)

var ErrNotAcknowledged = errors.New("broker did not acknowledge message")

type Config struct {
	URL            string
	Exchange       string
	RoutingKey     string
	QueueName      string
	ConfirmTimeout time.Duration
}

// RabbitMQ publishes on a single confirm-mode channel. Publishes are serialized so
// each one waits for its own broker acknowledgement.
type RabbitMQ struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel

	exchange       string
	routingKey     string
	confirmTimeout time.Duration
	logger         *slog.Logger
}

// NewRabbitMQ dials the broker, enables publisher confirms and declares a durable direct
// exchange bound to QueueName.
func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := setupChannel(conn, cfg)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	confirmTimeout := cfg.ConfirmTimeout
	if confirmTimeout <= 0 {
		confirmTimeout = defaultConfirm
	}

	logger = logger.With("component", "article_publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:           conn,
		channel:        ch,
		exchange:       cfg.Exchange,
		routingKey:     cfg.RoutingKey,
		confirmTimeout: confirmTimeout,
		logger:         logger,
	}, nil
}

func setupChannel(conn *amqp.Connection, cfg Config) (*amqp.Channel, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %q: %w", cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare queue %q: %w", cfg.QueueName, err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("bind queue %q: %w", q.Name, err)
	}

	return ch, nil
}

// ArticleMessage is the JSON body of an article event.
type ArticleMessage struct {
	Action    string         `json:"action"`
	Article   domain.Article `json:"article"`
	Timestamp time.Time      `json:"timestamp"`
}

func newCreatedMessage(article *domain.Article, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(ArticleMessage{
		Action:    ActionCreated,
		Article:   *article,
		Timestamp: now.UTC(),
	})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal article event: %w", err)
	}

	return amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    fmt.Sprintf("article-%d", article.ID),
		Type:         "article." + ActionCreated,
		Timestamp:    now,
		Body:         body,
	}, nil
}

// Publish announces a newly created article and waits for the broker to confirm it.
func (r *RabbitMQ) Publish(ctx context.Context, article *domain.Article) error {
	msg, err := newCreatedMessage(article, time.Now())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	confirm, err := r.channel.PublishWithDeferredConfirmWithContext(ctx, r.exchange, r.routingKey, false, false, msg)
	if err != nil {
		return fmt.Errorf("publish article event: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, r.confirmTimeout)
	defer cancel()

	acked, err := confirm.WaitContext(waitCtx)
	if err != nil {
		return fmt.Errorf("wait for publish confirm: %w", err)
	}
	if !acked {
		return ErrNotAcknowledged
	}

	r.logger.Debug("published article event",
		"article_id", article.ID,
		"message_id", msg.MessageId,
	)
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	if r.channel != nil && !r.channel.IsClosed() {
		errs = append(errs, r.channel.Close())
	}
	if r.conn != nil && !r.conn.IsClosed() {
		errs = append(errs, r.conn.Close())
	}
	return errors.Join(errs...)
}
