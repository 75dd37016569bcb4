package kafka

import (
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// Config — настройки Kafka. Переменные: VENTANA_KAFKA_*.
type Config struct {
	Enabled      bool          `envconfig:"ENABLED" default:"false"`
	Brokers      string        `envconfig:"BROKERS" default:"localhost:9092"` // через запятую, если несколько
	Topic        string        `envconfig:"TOPIC" default:"ventana-history"`
	GroupID      string        `envconfig:"GROUP_ID" default:"ventana-analytics"`
	BatchTimeout time.Duration `envconfig:"BATCH_TIMEOUT" default:"10ms"` // одиночные события не ждут секунду до отправки
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"5s"`
	StartOffset  string        `envconfig:"START_OFFSET" default:"first"` // first | last, для новой группы
	RetryMin     time.Duration `envconfig:"RETRY_MIN" default:"200ms"`
	RetryMax     time.Duration `envconfig:"RETRY_MAX" default:"30s"`
}

// brokersSlice возвращает список брокеров из строки (через запятую).
func (c *Config) brokersSlice() []string {
	if c == nil || c.Brokers == "" {
		return []string{"localhost:9092"}
	}
	parts := strings.Split(c.Brokers, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) startOffset() int64 {
	if strings.EqualFold(c.StartOffset, "last") {
		return kafka.LastOffset
	}
	return kafka.FirstOffset
}

// writer — продюсер: ключ — id записи, Hash-балансер кладёт события одной записи в одну партицию.
func (c *Config) writer() *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(c.brokersSlice()...),
		Topic:                  c.Topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           c.BatchTimeout,
		WriteTimeout:           c.WriteTimeout,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// reader — консьюмер группы GroupID; коммиты вручную через CommitMessages.
func (c *Config) reader() *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.brokersSlice(),
		Topic:       c.Topic,
		GroupID:     c.GroupID,
		StartOffset: c.startOffset(),
	})
}

// retryPolicy — экспоненциальные паузы между повторами обработчика, без общего лимита времени.
func (c *Config) retryPolicy() func() backoff.BackOff {
	minDelay, maxDelay := c.RetryMin, c.RetryMax
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		if minDelay > 0 {
			b.InitialInterval = minDelay
		}
		if maxDelay > 0 {
			b.MaxInterval = maxDelay
		}
		b.MaxElapsedTime = 0
		return b
	}
}
