// Package events streams audit activity to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mining-map-api/internal/models"

	"github.com/segmentio/kafka-go"
)

// Publisher forwards stored activity entries.
type Publisher interface {
	PublishActivity(ctx context.Context, entry models.ActivityLog) error
	Close() error
}

// MessageWriter is the subset of *kafka.Writer used by KafkaPublisher.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each activity entry as one JSON message keyed by user id.
type KafkaPublisher struct {
	writer MessageWriter
}

// NewKafkaPublisher creates a synchronous writer for topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		WriteTimeout:           10 * time.Second,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	})
}

// NewPublisherWithWriter wraps an existing writer.
func NewPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// PublishActivity implements Publisher.
func (p *KafkaPublisher) PublishActivity(ctx context.Context, entry models.ActivityLog) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("events: encode activity: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entry.UserID),
		Value: value,
		Time:  entry.Timestamp,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(entry.Action)},
		},
	})
	if err != nil {
		return fmt.Errorf("events: publish activity: %w", err)
	}
	return nil
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// Noop discards everything. Used when no brokers are configured.
type Noop struct{}

// PublishActivity implements Publisher.
func (Noop) PublishActivity(context.Context, models.ActivityLog) error { return nil }

// Close implements Publisher.
func (Noop) Close() error { return nil }

// New returns a KafkaPublisher, or Noop when brokers is empty.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		return Noop{}
	}
	return NewKafkaPublisher(brokers, topic)
}
