package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// KafkaPublisher публикует события в топик Kafka
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *logrus.Logger
}

// NewKafkaPublisher создаёт продюсера для заданного топика
func NewKafkaPublisher(brokers []string, topic string, logger *logrus.Logger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireOne,
		Async:        false,
		BatchTimeout: 50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: w, logger: logger}
}

// Publish сериализует событие и отправляет его в Kafka.
// Ключ сообщения - ключ локации, чтобы события одной локации шли в одну партицию.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to kafka: %w", err)
	}
	p.logger.WithFields(logrus.Fields{
		"event_id":   event.ID,
		"event_type": event.Type,
		"topic":      p.writer.Topic,
	}).Debug("Event published to Kafka")
	return nil
}

// Close закрывает продюсера
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func serializeToMessage(event Event) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.LocationKey),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID.String())},
		},
		Time: event.Timestamp,
	}, nil
}
