// Package events publishes created-entity records to Kafka so downstream
// consumers (notification fan-out, analytics pipelines) can react without
// polling the store. A nil *Publisher is valid and publishes nothing.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Publisher struct {
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

type entityCreated struct {
	Entity string    `json:"entity"`
	ID     string    `json:"id"`
	At     time.Time `json:"at"`
}

func NewPublisher(brokers []string, topic string, log *zap.SugaredLogger) *Publisher {
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	return &Publisher{writer: w, log: log}
}

// EntityCreated emits one record keyed by entity name. Failures are logged
// and swallowed; a create response never depends on the broker.
func (p *Publisher) EntityCreated(ctx context.Context, entity, id string) {
	if p == nil {
		return
	}
	b, err := json.Marshal(entityCreated{Entity: entity, ID: id, At: time.Now().UTC()})
	if err != nil {
		return
	}
	msg := kafka.Message{Key: []byte(entity), Value: b, Time: time.Now()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warnw("publish entity created", "entity", entity, "err", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
