// Package events publishes person change events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"contacts/internal/contacts/models"
	"contacts/internal/platform/kafka/producer"
)

// Producer is the subset of producer.Producer the publisher needs.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaPublisher writes one JSON record per event, keyed by person id so
// every change to a person lands on the same partition in order.
type KafkaPublisher struct {
	producer Producer
	topic    string
}

func NewKafkaPublisher(p Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

func (k *KafkaPublisher) Publish(ctx context.Context, event models.PersonEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal person event: %w", err)
	}

	return k.producer.Produce(ctx, &producer.Message{
		Topic: k.topic,
		Key:   []byte(event.PersonID),
		Value: payload,
		Headers: map[string]string{
			"aggregate_type": "person",
			"event_type":     string(event.Type),
		},
	})
}
