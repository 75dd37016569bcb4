package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config — настройки подключения к MongoDB. Переменные: VENTANA_MONGO_*.
type Config struct {
	URI            string        `envconfig:"URI" default:"mongodb://localhost:27017"`
	Database       string        `envconfig:"DATABASE" default:"ventana"`
	Collection     string        `envconfig:"COLLECTION" default:"kv_store"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" default:"10s"`
}

// Client — обёртка над mongo.Client с выбранной коллекцией.
type Client struct {
	*mongo.Client
	coll *mongo.Collection
}

// New подключается к MongoDB и ждёт primary в пределах ConnectTimeout.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("ventana").
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Client{Client: client, coll: client.Database(cfg.Database).Collection(cfg.Collection)}, nil
}

// Coll возвращает коллекцию ключ-значение.
func (c *Client) Coll() *mongo.Collection {
	return c.coll
}
