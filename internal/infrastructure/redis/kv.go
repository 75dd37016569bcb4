package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"ventanaCalc/internal/ports"
)

var _ ports.KVStore = (*KV)(nil)

// KV реализует ports.KVStore через Redis: значение хранится строкой под ключом с префиксом.
type KV struct {
	cli    *Client
	prefix string
	log    *slog.Logger
}

// NewKV возвращает KV-хранилище поверх клиента.
func NewKV(cli *Client, prefix string, log *slog.Logger) *KV {
	return &KV{cli: cli, prefix: prefix, log: log}
}

func (k *KV) key(key string) string {
	return k.prefix + key
}

// Get возвращает значение по ключу. Если ключа нет — found == false.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := k.cli.Get(ctx, k.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return nil, false, nil
		}
		k.log.Debug("redis get failed", "key", key, "error", err)
		return nil, false, err
	}
	return b, true, nil
}

// Set сохраняет значение без TTL, перезаписывая прежнее.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.cli.Set(ctx, k.key(key), value, 0).Err(); err != nil {
		k.log.Debug("redis set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа — не ошибка.
func (k *KV) Delete(ctx context.Context, key string) error {
	if err := k.cli.Del(ctx, k.key(key)).Err(); err != nil {
		k.log.Debug("redis del failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (k *KV) Ping(ctx context.Context) error {
	return k.cli.Ping(ctx)
}
