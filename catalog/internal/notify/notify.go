package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Notifier writes circulation events to the operational stream: always the
// process log, and a kafka topic when a producer is configured.
// Nothing here is allowed to fail the operation that emitted the event.
type Notifier struct {
	log      *zap.Logger
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
}

type Option func(n *Notifier)

func WithProducer(producer sarama.SyncProducer, topic string) Option {
	return func(n *Notifier) {
		n.producer = producer
		n.topic = topic
	}
}

func WithCircuitBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(n *Notifier) {
		n.cb = cb
	}
}

func New(log *zap.Logger, opts ...Option) *Notifier {
	n := &Notifier{
		log: log.Named("notify"),
		cb:  circuit_breaker.New(10, 30*time.Second, 0.5, 3),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Notify(_ context.Context, event model.CirculationEvent) {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.Int("book_id", event.BookID),
		zap.Int("patron_id", event.PatronID),
		zap.Time("timestamp", event.Timestamp),
	}
	switch event.Type {
	case model.EventLoanCreated:
		n.log.Info("[LOAN] book lent", fields...)
	case model.EventBookReturned:
		n.log.Info("[RETURN] book returned", fields...)
	default:
		n.log.Info("circulation event", append(fields, zap.String("type", string(event.Type)))...)
	}

	if n.producer == nil {
		return
	}
	if err := n.cb.Call(func() error { return n.publish(event) }); err != nil {
		n.log.Warn("publish circulation event", zap.String("event_id", event.ID), zap.Error(err))
	}
}

func (n *Notifier) publish(event model.CirculationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	msg := &sarama.ProducerMessage{
		Topic: n.topic,
		Key:   sarama.StringEncoder(strconv.Itoa(event.BookID)),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = n.producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "send message")
	}
	return nil
}

func (n *Notifier) Close() error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Close()
}
