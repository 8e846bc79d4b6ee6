// Package kafka publishes committed domain events to Kafka topics.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/pkg/ddd"

	kafkago "github.com/segmentio/kafka-go"
)

const eventNameHeader = "event-name"

// Topics maps event families to topic names. Events whose name starts with
// "order." go to OrderChanged, "delivery." to DeliveryChanged.
type Topics struct {
	OrderChanged    string
	DeliveryChanged string
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type EventPublisher struct {
	writer messageWriter
	topics Topics
}

// NewWriter returns an async writer that picks the topic per message and
// batches writes for up to 50ms. WriteMessages returns once the messages are
// queued; delivery failures are only logged.
func NewWriter(brokers []string, logger *slog.Logger) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafkago.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             logCompletion(logger),
	}
}

func logCompletion(logger *slog.Logger) func([]kafkago.Message, error) {
	return func(msgs []kafkago.Message, err error) {
		if err == nil {
			return
		}
		for _, msg := range msgs {
			logger.Error("kafka: event not delivered",
				slog.String("topic", msg.Topic),
				slog.String("key", string(msg.Key)),
				slog.Any("error", err))
		}
	}
}

func NewEventPublisher(writer messageWriter, topics Topics) *EventPublisher {
	return &EventPublisher{writer: writer, topics: topics}
}

// Publish writes events keyed by aggregate id, so every change of one
// aggregate lands on the same partition in order.
func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.Event) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, 0, len(events))
	for _, event := range events {
		topic, err := p.topicFor(event.EventName())
		if err != nil {
			return err
		}

		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("kafka: marshal %s: %w", event.EventName(), err)
		}

		msgs = append(msgs, kafkago.Message{
			Topic: topic,
			Key:   []byte(event.AggregateID()),
			Value: payload,
			Time:  event.OccurredAt(),
			Headers: []kafkago.Header{
				{Key: eventNameHeader, Value: []byte(event.EventName())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("kafka: write %d messages: %w", len(msgs), err)
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

func (p *EventPublisher) topicFor(eventName string) (string, error) {
	family, _, _ := strings.Cut(eventName, ".")
	switch family {
	case "order":
		return p.topics.OrderChanged, nil
	case "delivery":
		return p.topics.DeliveryChanged, nil
	default:
		return "", fmt.Errorf("kafka: no topic for event %q", eventName)
	}
}
