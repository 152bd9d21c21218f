// Package kafka publishes evaluation outcomes to Kafka topics: breached
// parametric triggers and auto-approved claims.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/climate-risk-service/internal/config"
	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/service"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher produces trigger-breach and approved-claim events.
// It implements service.EventPublisher.
type Publisher struct {
	triggers *kafkago.Writer
	claims   *kafkago.Writer
	logger   *slog.Logger
}

// NewPublisher creates Kafka producers for the configured topics.
func NewPublisher(cfg *config.Config, logger *slog.Logger) *Publisher {
	return &Publisher{
		triggers: newWriter(cfg.KafkaBrokers, cfg.KafkaTriggerTopic),
		claims:   newWriter(cfg.KafkaBrokers, cfg.KafkaClaimTopic),
		logger:   logger,
	}
}

func newWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
}

// PublishTriggers serializes and publishes breached triggers in a single
// WriteMessages call.
func (p *Publisher) PublishTriggers(ctx context.Context, triggers []domain.ParametricTrigger) error {
	if len(triggers) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(triggers))
	for i := range triggers {
		msg, err := serializeTrigger(triggers[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return p.triggers.WriteMessages(ctx, msgs...)
}

// PublishClaim publishes one approved-claim event.
func (p *Publisher) PublishClaim(ctx context.Context, event service.ClaimEvent) error {
	msg, err := serializeClaim(event)
	if err != nil {
		return err
	}
	return p.claims.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	if err := p.triggers.Close(); err != nil {
		return err
	}
	return p.claims.Close()
}

// serializeTrigger marshals a trigger into a Kafka message keyed by
// location, so one location's breaches stay ordered within a partition.
func serializeTrigger(trigger domain.ParametricTrigger) (kafkago.Message, error) {
	data, err := json.Marshal(trigger)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize trigger: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(trigger.LocationName),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "parameter", Value: []byte(trigger.Parameter)},
			{Key: "date_checked", Value: []byte(trigger.DateChecked)},
		},
	}, nil
}

func serializeClaim(event service.ClaimEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize claim event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.LocationName),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "disaster_type", Value: []byte(event.DisasterType)},
			{Key: "claim_status", Value: []byte(event.Assessment.ClaimStatus)},
		},
	}, nil
}
