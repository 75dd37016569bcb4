package app

import (
	"context"
	"fmt"
	"log/slog"

	"ventanaCalc/internal/infrastructure/file"
	"ventanaCalc/internal/infrastructure/mongo"
	"ventanaCalc/internal/infrastructure/pg"
	"ventanaCalc/internal/infrastructure/redis"
	"ventanaCalc/internal/ports"
)

// openStorage подключает выбранный бэкенд истории. Возвращает хранилище и функцию закрытия соединения.
func openStorage(ctx context.Context, cfg Config, log *slog.Logger) (ports.KVStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Backend {
	case BackendFile, "":
		kv, err := file.New(&cfg.Storage.Config, log)
		if err != nil {
			return nil, noop, fmt.Errorf("file storage: %w", err)
		}
		return kv, noop, nil

	case BackendRedis:
		rdb, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("redis: %w", err)
		}
		return redis.NewKV(rdb, cfg.Redis.KeyPrefix, log), func() { _ = rdb.Close() }, nil

	case BackendPostgres:
		db, err := pg.New(ctx, &cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewKV(db, log), func() { _ = db.Close() }, nil

	case BackendMongo:
		client, err := mongo.New(ctx, &cfg.Mongo)
		if err != nil {
			return nil, noop, fmt.Errorf("mongo: %w", err)
		}
		return mongo.NewKV(client, log), func() { _ = client.Disconnect(context.Background()) }, nil
	}
	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}
