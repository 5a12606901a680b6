// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Denteo

package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/denteo/clinic-backend/internal/config"
	"github.com/denteo/clinic-backend/internal/logger"
	"github.com/denteo/clinic-backend/internal/utils"
	"github.com/denteo/clinic-backend/models"
	kafkago "github.com/segmentio/kafka-go"
)

// queueSize bounds the in-flight event buffer. When the queue is full,
// new events are dropped with a warning rather than blocking the request.
const queueSize = 256

// writeTimeout bounds a single broker write attempt.
const writeTimeout = 5 * time.Second

// messageWriter is the subset of kafka.Writer used by the publisher,
// extracted so tests can substitute a stub.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher writes auth events to a Kafka topic through a buffered
// queue drained by a background worker. It implements both [Publisher]
// and the workers.Worker interface: Run must be called once at startup
// to start the drain loop.
type KafkaPublisher struct {
	writer  messageWriter
	source  string
	uuidGen *utils.UUIDGenerator
	logger  *logger.Logger

	queue chan kafkago.Message
	done  chan struct{}
}

// NewKafkaPublisher constructs a publisher for the configured brokers
// and topic.
func NewKafkaPublisher(cfg config.Events, log *logger.Logger) *KafkaPublisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
		WriteTimeout: writeTimeout,
		ErrorLogger: kafkago.LoggerFunc(func(msg string, args ...interface{}) {
			log.Warn().Str("func", "kafka.Writer").Msgf("writer: "+msg, args...)
		}),
	}

	return &KafkaPublisher{
		writer:  writer,
		source:  "auth-service",
		uuidGen: utils.NewUUIDGenerator(),
		logger:  log,
		queue:   make(chan kafkago.Message, queueSize),
		done:    make(chan struct{}),
	}
}

// Run starts the background drain loop. It returns immediately; the
// loop runs until Close is called.
func (p *KafkaPublisher) Run() {
	go func() {
		defer close(p.done)
		for msg := range p.queue {
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			if err := p.writer.WriteMessages(ctx, msg); err != nil {
				p.logger.Warn().Err(err).Str("func", "*KafkaPublisher.Run").Msg("failed to publish event")
			}
			cancel()
		}
	}()
}

// PublishUserCreated emits a user.created event.
func (p *KafkaPublisher) PublishUserCreated(ctx context.Context, user models.PublicUser) {
	p.enqueue(ctx, TypeUserCreated, user)
}

// PublishUserLoggedIn emits a user.loggedin event.
func (p *KafkaPublisher) PublishUserLoggedIn(ctx context.Context, user models.PublicUser) {
	p.enqueue(ctx, TypeUserLoggedIn, user)
}

func (p *KafkaPublisher) enqueue(ctx context.Context, eventType string, user models.PublicUser) {
	log := logger.FromContext(ctx)

	event := Event{
		ID:         p.uuidGen.Generate(),
		Type:       eventType,
		Source:     p.source,
		OccurredAt: time.Now().UTC(),
		Data:       user,
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Warn().Err(err).Str("func", "*KafkaPublisher.enqueue").Msg("failed to marshal event")
		return
	}

	msg := kafkago.Message{
		// partition by user so per-account ordering holds
		Key:   []byte(strconv.FormatInt(user.UserID, 10)),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "content-type", Value: []byte("application/json")},
		},
		Time: event.OccurredAt,
	}

	select {
	case p.queue <- msg:
	default:
		log.Warn().Str("func", "*KafkaPublisher.enqueue").Str("event_type", eventType).Msg("event queue full, dropping event")
	}
}

// Close stops accepting events, drains the queue and closes the writer.
func (p *KafkaPublisher) Close() error {
	close(p.queue)
	<-p.done
	return p.writer.Close()
}
