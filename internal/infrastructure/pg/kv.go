package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"ventanaCalc/internal/ports"
)

var _ ports.KVStore = (*KV)(nil)

// KV реализует ports.KVStore для PostgreSQL (таблица kv_store).
type KV struct {
	db  *DB
	log *slog.Logger
}

// NewKV возвращает KV-хранилище.
func NewKV(db *DB, log *slog.Logger) *KV {
	return &KV{db: db, log: log}
}

// Get читает значение по ключу.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := k.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		k.log.Debug("kv get failed", "key", key, "error", err)
		return nil, false, err
	}
	return value, true, nil
}

// Set вставляет или перезаписывает значение одной командой.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	_, err := k.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	if err != nil {
		k.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет значение.
func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		k.log.Debug("kv delete failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (k *KV) Ping(ctx context.Context) error {
	return k.db.Ping(ctx)
}
