package kafka

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
	"ventanaCalc/internal/ports"
)

var _ ports.IProducer = (*Producer)(nil)

// messageWriter — часть kafka.Writer, нужная продюсеру.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer отправляет события истории в топик.
type Producer struct {
	w     messageWriter
	topic string
}

// NewProducer создаёт продюсера по конфигу. После использования вызови Close().
func NewProducer(cfg *Config) *Producer {
	return &Producer{w: cfg.writer(), topic: cfg.Topic}
}

// Send отправляет одно событие. value — JSON, поэтому ставится заголовок content-type.
func (p *Producer) Send(ctx context.Context, key, value []byte) error {
	err := p.w.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write %s: %w", p.topic, err)
	}
	return nil
}

// Close закрывает продюсера.
func (p *Producer) Close() error {
	return p.w.Close()
}
