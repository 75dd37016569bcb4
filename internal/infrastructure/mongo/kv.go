package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ventanaCalc/internal/ports"
)

var _ ports.KVStore = (*KV)(nil)

// kvDoc — документ коллекции: _id — ключ, value — сырые байты.
type kvDoc struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// KV реализует ports.KVStore для MongoDB.
type KV struct {
	client *Client
	log    *slog.Logger
}

// NewKV возвращает KV-хранилище.
func NewKV(client *Client, log *slog.Logger) *KV {
	return &KV{client: client, log: log}
}

// Get читает значение по ключу.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc kvDoc
	err := k.client.Coll().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		k.log.Debug("kv get failed", "key", key, "error", err)
		return nil, false, err
	}
	return doc.Value, true, nil
}

// Set заменяет документ целиком (upsert).
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	doc := kvDoc{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := k.client.Coll().ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		k.log.Debug("kv set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет документ.
func (k *KV) Delete(ctx context.Context, key string) error {
	if _, err := k.client.Coll().DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		k.log.Debug("kv delete failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД.
func (k *KV) Ping(ctx context.Context) error {
	return k.client.Ping(ctx, nil)
}
