package click

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Config — настройки подключения к ClickHouse. Переменные: VENTANA_CLICKHOUSE_*.
type Config struct {
	Enabled     bool          `envconfig:"ENABLED" default:"false"`
	Host        string        `envconfig:"HOST" default:"localhost"`
	Port        string        `envconfig:"PORT" default:"9000"`
	Database    string        `envconfig:"DATABASE" default:"default"`
	Username    string        `envconfig:"USERNAME" default:"default"`
	Password    string        `envconfig:"PASSWORD" default:""`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
}

// options собирает параметры драйвера: нативный протокол, LZ4.
func (c *Config) options() *clickhouse.Options {
	return &clickhouse.Options{
		Addr: []string{c.Host + ":" + c.Port},
		Auth: clickhouse.Auth{
			Database: c.Database,
			Username: c.Username,
			Password: c.Password,
		},
		DialTimeout: c.DialTimeout,
		Compression: &clickhouse.Compression{Method: clickhouse.CompressionLZ4},
	}
}

// Client — обёртка над sql.DB (драйвер clickhouse).
type Client struct {
	db *sql.DB
}

// New подключается к ClickHouse по конфигу и проверяет пингом. После использования вызови Close().
func New(ctx context.Context, cfg *Config) (*Client, error) {
	db := clickhouse.OpenDB(cfg.options())
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("clickhouse ping %s:%s: %w", cfg.Host, cfg.Port, err)
	}
	return &Client{db: db}, nil
}

// DB возвращает *sql.DB для выполнения запросов.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Close закрывает соединение с ClickHouse.
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping проверяет соединение.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
