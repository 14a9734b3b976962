// Package events publishes domain events of the storefront to Kafka.
package events

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/logger"
)

const (
	// TypeOrderPlaced is the event type header of OrderPlaced messages.
	TypeOrderPlaced = "order.placed"

	defaultPublishTimeout = 5 * time.Second
)

// ErrNoBrokers is returned when Kafka is enabled without any broker address.
var ErrNoBrokers = errors.New("kafka enabled but no brokers configured")

// OrderPlaced is emitted after an order row has been inserted.
type OrderPlaced struct {
	EventID       string    `json:"eventId"`
	OrderID       uint64    `json:"orderId"`
	UserID        *uint64   `json:"userId,omitempty"`
	CustomerName  string    `json:"customerName"`
	City          string    `json:"city"`
	TotalAmount   float64   `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	ItemCount     int       `json:"itemCount"`
	PlacedAt      time.Time `json:"placedAt"`
}

// NewOrderPlaced returns an OrderPlaced event with a fresh event id.
func NewOrderPlaced(orderID uint64) OrderPlaced {
	return OrderPlaced{
		EventID:  uuid.NewString(),
		OrderID:  orderID,
		PlacedAt: time.Now().UTC(),
	}
}

// Publisher sends storefront events.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, e OrderPlaced) error
	Close() error
}

// New returns a Kafka publisher when enabled in cfg, a no-op publisher otherwise.
func New(cfg config.Kafka) (Publisher, error) {
	if !cfg.Enabled {
		return NopPublisher{}, nil
	}

	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}

	kl := logger.For("kafka")

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Logger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			kl.Trace().Msgf(msg, args...)
		}),
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...interface{}) {
			kl.Error().Msgf(msg, args...)
		}),
	}

	kl.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("kafka publisher enabled")

	return NewKafkaPublisher(w, cfg.PublishTimeout), nil
}

// messageWriter is the part of *kafka.Writer used by KafkaPublisher.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON messages keyed by order id.
type KafkaPublisher struct {
	w       messageWriter
	timeout time.Duration
}

// NewKafkaPublisher wraps w. A zero timeout falls back to five seconds.
func NewKafkaPublisher(w messageWriter, timeout time.Duration) *KafkaPublisher {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &KafkaPublisher{w: w, timeout: timeout}
}

// PublishOrderPlaced writes e and waits for the broker acknowledgement.
func (p *KafkaPublisher) PublishOrderPlaced(ctx context.Context, e OrderPlaced) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("kafka: marshal %s: %w", TypeOrderPlaced, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(e.OrderID, 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(TypeOrderPlaced)},
			{Key: "event_id", Value: []byte(e.EventID)},
		},
		Time: e.PlacedAt,
	}

	if err = p.w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write %s: %w", TypeOrderPlaced, err)
	}

	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher drops every event.
type NopPublisher struct{}

// PublishOrderPlaced does nothing.
func (NopPublisher) PublishOrderPlaced(context.Context, OrderPlaced) error { return nil }

// Close does nothing.
func (NopPublisher) Close() error { return nil }
