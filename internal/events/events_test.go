package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northsupermart/storefront/internal/config"
)

type recordingWriter struct {
	mu       sync.Mutex
	msgs     []kafka.Message
	err      error
	deadline time.Time
	closed   bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.deadline, _ = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)

	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestNew(t *testing.T) {
	p, err := New(config.Kafka{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, NopPublisher{}, p)
	require.NoError(t, p.PublishOrderPlaced(context.Background(), NewOrderPlaced(1)))
	require.NoError(t, p.Close())

	_, err = New(config.Kafka{Enabled: true})
	require.ErrorIs(t, err, ErrNoBrokers)

	p, err = New(config.Kafka{Enabled: true, Brokers: []string{"localhost:9092"}, Topic: "orders.placed"})
	require.NoError(t, err)
	assert.IsType(t, &KafkaPublisher{}, p)
	require.NoError(t, p.Close())
}

func TestKafkaPublisher_PublishOrderPlaced(t *testing.T) {
	w := &recordingWriter{}
	p := NewKafkaPublisher(w, 0)
	assert.Equal(t, defaultPublishTimeout, p.timeout)

	userID := uint64(9)
	e := NewOrderPlaced(31)
	e.UserID = &userID
	e.CustomerName = "Zara"
	e.TotalAmount = 4350
	e.ItemCount = 2

	before := time.Now()
	require.NoError(t, p.PublishOrderPlaced(context.Background(), e))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "31", string(msg.Key))
	assert.WithinDuration(t, before.Add(defaultPublishTimeout), w.deadline, time.Second)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, TypeOrderPlaced, headers["type"])
	assert.Equal(t, e.EventID, headers["event_id"])

	var decoded OrderPlaced
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, uint64(31), decoded.OrderID)
	require.NotNil(t, decoded.UserID)
	assert.Equal(t, userID, *decoded.UserID)
	assert.Equal(t, "Zara", decoded.CustomerName)
	assert.Equal(t, 2, decoded.ItemCount)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	brokerDown := errors.New("broker down")
	p := NewKafkaPublisher(&recordingWriter{err: brokerDown}, time.Second)

	err := p.PublishOrderPlaced(context.Background(), NewOrderPlaced(1))
	require.ErrorIs(t, err, brokerDown)
}

func TestNewOrderPlaced(t *testing.T) {
	a := NewOrderPlaced(1)
	b := NewOrderPlaced(1)

	assert.NotEmpty(t, a.EventID)
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.Equal(t, time.UTC, a.PlacedAt.Location())
}
