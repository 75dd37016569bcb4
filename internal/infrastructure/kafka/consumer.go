package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"

	"github.com/cenkalti/backoff/v4"
	"github.com/segmentio/kafka-go"
)

// EventHandler — обработчик событий истории (реализуется use case).
type EventHandler interface {
	HandleEntryEvent(ctx context.Context, ev domain.EntryEvent) error
}

var _ EventHandler = (ports.ICalculatorUseCase)(nil)

// Consumer — обёртка над kafka.Reader, декодирует сообщения в domain.EntryEvent и вызывает обработчик.
type Consumer struct {
	r     messageReader
	h     EventHandler
	log   *slog.Logger
	retry func() backoff.BackOff
}

// messageReader — часть kafka.Reader, нужная консьюмеру.
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewConsumer создаёт консьюмера по конфигу, обработчику и логгеру. После использования вызови Close().
func NewConsumer(cfg *Config, h EventHandler, log *slog.Logger) *Consumer {
	if log == nil {
		log = slog.Default()
	}
	return &Consumer{r: cfg.reader(), h: h, log: log, retry: cfg.retryPolicy()}
}

// Run читает сообщения группы до отмены ctx или ошибки чтения/коммита.
// Нечитаемое событие коммитится и пропускается. Ошибка обработчика повторяется с паузами,
// пока не пройдёт: коммит смещения двигает группу за все предыдущие сообщения партиции.
func (c *Consumer) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		msg, err := c.r.FetchMessage(ctx)
		if err != nil {
			return c.stop(ctx, "fetch", err)
		}
		if err := c.process(ctx, msg); err != nil {
			return c.stop(ctx, "handle", err)
		}
		if err := c.r.CommitMessages(ctx, msg); err != nil {
			return c.stop(ctx, "commit", err)
		}
	}
	return ctx.Err()
}

// process возвращает ошибку, только если повторы прервала отмена ctx; тогда сообщение не коммитится.
func (c *Consumer) process(ctx context.Context, msg kafka.Message) error {
	var ev domain.EntryEvent
	if err := json.Unmarshal(msg.Value, &ev); err != nil || ev.Type == "" {
		c.log.Warn("skip undecodable event", append(msgAttrs(msg), "error", err)...)
		return nil
	}

	handle := func() error { return c.h.HandleEntryEvent(ctx, ev) }
	notify := func(err error, wait time.Duration) {
		c.log.Warn("event not handled, retrying", append(msgAttrs(msg), "event", ev.Type, "retry_in", wait, "error", err)...)
	}
	return backoff.RetryNotify(handle, backoff.WithContext(c.backOff(), ctx), notify)
}

func (c *Consumer) backOff() backoff.BackOff {
	if c.retry == nil {
		return (&Config{}).retryPolicy()()
	}
	return c.retry()
}

func (c *Consumer) stop(ctx context.Context, op string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	c.log.Error("kafka consumer stopped", "op", op, "error", err)
	return err
}

func msgAttrs(msg kafka.Message) []any {
	return []any{"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset}
}

// Close закрывает консьюмера.
func (c *Consumer) Close() error {
	return c.r.Close()
}
