package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cartas_marketplace/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// Notify writes one message per call and waits for the ack, so the writer
// must not hold messages back waiting for a batch to fill.
const (
	kafkaBatchSize    = 1
	kafkaBatchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes each Message to one topic, keyed by user id so a
// user's notifications keep their order.
type KafkaNotifier struct {
	writer messageWriter
	topic  string
}

var _ interfaces.INotifier = (*KafkaNotifier)(nil)

func NewKafkaNotifier(brokers []string, topic string) (*KafkaNotifier, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka notifier requires at least one broker")
	}
	if topic == "" {
		return nil, fmt.Errorf("kafka notifier requires a topic")
	}
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			BatchSize:              kafkaBatchSize,
			BatchTimeout:           kafkaBatchTimeout,
			AllowAutoTopicCreation: true,
		},
		topic: topic,
	}, nil
}

func (n *KafkaNotifier) Notify(ctx context.Context, userID string, template string, payload map[string]any) error {
	msg := newMessage(userID, template, payload)
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	err = n.writer.WriteMessages(ctx, kafka.Message{
		Topic: n.topic,
		Key:   []byte(userID),
		Value: value,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "template", Value: []byte(template)},
		},
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	log.Printf("[notification][kafka] published id=%s user_id=%s template=%s topic=%s", msg.ID, userID, template, n.topic)
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
