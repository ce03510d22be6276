// Package rabbitmq publishes domain events to a topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Publisher sends JSON events to a durable topic exchange.
// A closed channel is reopened and a broken connection re-dialed on the next
// Publish.
type Publisher struct {
	url      string
	exchange string
	log      *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher dials the broker and declares the exchange.
func NewPublisher(log *slog.Logger, url, exchange string) (*Publisher, error) {
	p := &Publisher{
		url:      url,
		exchange: exchange,
		log:      log.With("adapter", "rabbitmq"),
	}

	if err := p.connect(); err != nil {
		return nil, err
	}

	p.log.Info("rabbitmq publisher initialized", slog.String("exchange", exchange))
	return p, nil
}

// linkState describes what must be re-established before publishing.
type linkState int

const (
	linkOpen linkState = iota
	linkChannelClosed
	linkDown
)

// stateOf decides the recovery step. A channel exception closes only the
// channel, so an open connection is reused.
func stateOf(connOpen, channelOpen bool) linkState {
	switch {
	case !connOpen:
		return linkDown
	case !channelOpen:
		return linkChannelClosed
	default:
		return linkOpen
	}
}

// state must be called with mu held.
func (p *Publisher) state() linkState {
	connOpen := p.conn != nil && !p.conn.IsClosed()
	channelOpen := p.channel != nil && !p.channel.IsClosed()
	return stateOf(connOpen, channelOpen)
}

// ensureOpen must be called with mu held.
func (p *Publisher) ensureOpen(ctx context.Context) error {
	switch p.state() {
	case linkOpen:
		return nil
	case linkChannelClosed:
		p.log.WarnContext(ctx, "rabbitmq channel closed, reopening")
		channel, err := p.openChannel(p.conn)
		if err == nil {
			p.channel = channel
			return nil
		}
		p.log.WarnContext(ctx, "reopen channel failed, reconnecting", slog.String("error", err.Error()))
	default:
		p.log.WarnContext(ctx, "rabbitmq connection closed, reconnecting")
	}

	if p.conn != nil {
		_ = p.conn.Close()
	}
	p.conn, p.channel = nil, nil
	return p.connect()
}

// connect must be called with mu held or before the publisher is shared.
func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("connect to rabbitmq: %w", err)
	}

	channel, err := p.openChannel(conn)
	if err != nil {
		_ = conn.Close()
		return err
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// openChannel opens a channel on conn and declares the exchange, which also
// recreates it if it was deleted while the service ran.
func (p *Publisher) openChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	return channel, nil
}

// Publish marshals payload to JSON and sends it with routingKey.
func (p *Publisher) Publish(ctx context.Context, routingKey string, payload any) error {
	msg, err := newMessage(payload, time.Now())
	if err != nil {
		return fmt.Errorf("build message %s: %w", routingKey, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureOpen(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	p.log.DebugContext(ctx, "event published",
		slog.String("routing_key", routingKey),
		slog.Int("body_size", len(msg.Body)),
	)
	return nil
}

// Ping reports whether both the connection and the channel are open.
func (p *Publisher) Ping(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state() {
	case linkDown:
		return errors.New("rabbitmq connection is closed")
	case linkChannelClosed:
		return errors.New("rabbitmq channel is closed")
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newMessage(payload any, now time.Time) (amqp.Publishing, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
		Timestamp:    now,
		MessageId:    uuid.NewString(),
	}, nil
}
