package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"audit-service/internal/domain"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	log "github.com/sirupsen/logrus"
)

// LeadPublisher delivers lead events to Kafka, keyed by the audit
// request id so per-lead ordering is preserved.
type LeadPublisher struct {
	producer *kafka.Producer
	topic    string
}

func NewLeadPublisher(bootstrapServers, topic string) (*LeadPublisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": bootstrapServers})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("Lead Kafka producer created successfully for audit-service")

	return &LeadPublisher{producer: p, topic: topic}, nil
}

func (p *LeadPublisher) Publish(ctx context.Context, event domain.LeadEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal lead event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	defer close(deliveryChan)

	if err := p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(strconv.Itoa(event.EntityID)),
		Value:          payload,
	}, deliveryChan); err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case e := <-deliveryChan:
		msg, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected event type: %T", e)
		}
		if msg.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", msg.TopicPartition.Error)
		}
		return nil
	case <-time.After(10 * time.Second):
		return fmt.Errorf("delivery timeout")
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *LeadPublisher) Close() {
	log.Info("Closing lead Kafka producer for audit-service...")
	p.producer.Flush(15 * 1000)
	p.producer.Close()
}
