// Package testutil содержит хелперы для интеграционных тестов: контейнеры бэкендов и общий набор проверок KV.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// mappedPort принимает результат MappedPort как есть: f(c.MappedPort(ctx, "5432")).
func mappedPort(p interface{ Port() string }, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return p.Port(), nil
}

// failed останавливает недоподнятый контейнер.
func failed(c testcontainers.Container, name string, err error) error {
	_ = c.Terminate(context.Background())
	return fmt.Errorf("%s endpoint: %w", name, err)
}

// PostgresContainer — PostgreSQL с параметрами подключения.
type PostgresContainer struct {
	testcontainers.Container
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// DSN возвращает строку подключения для lib/pq.
func (c *PostgresContainer) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.DBName)
}

// NewPostgresContainer поднимает postgres:16-alpine.
func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	out := &PostgresContainer{User: "test", Password: "test", DBName: "ventana_test"}
	c, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase(out.DBName),
		postgres.WithUsername(out.User),
		postgres.WithPassword(out.Password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("postgres container: %w", err)
	}
	out.Container = c
	if out.Host, err = out.Container.Host(ctx); err == nil {
		out.Port, err = mappedPort(c.MappedPort(ctx, "5432"))
	}
	if err != nil {
		return nil, failed(c, "postgres", err)
	}
	return out, nil
}

// RedisContainer — Redis без пароля.
type RedisContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// NewRedisContainer поднимает redis:7-alpine.
func NewRedisContainer(ctx context.Context) (*RedisContainer, error) {
	c, err := redis.Run(ctx, "redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("redis container: %w", err)
	}
	out := &RedisContainer{Container: c}
	if out.Host, err = out.Container.Host(ctx); err == nil {
		out.Port, err = mappedPort(c.MappedPort(ctx, "6379"))
	}
	if err != nil {
		return nil, failed(c, "redis", err)
	}
	return out, nil
}

// MongoContainer — одиночный mongod.
type MongoContainer struct {
	testcontainers.Container
	Host string
	Port string
}

// URI возвращает строку подключения для mongo-driver.
func (c *MongoContainer) URI() string {
	return "mongodb://" + c.Host + ":" + c.Port
}

// NewMongoContainer поднимает mongo:7.
func NewMongoContainer(ctx context.Context) (*MongoContainer, error) {
	c, err := mongodb.Run(ctx, "mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("mongo container: %w", err)
	}
	out := &MongoContainer{Container: c}
	if out.Host, err = out.Container.Host(ctx); err == nil {
		out.Port, err = mappedPort(c.MappedPort(ctx, "27017"))
	}
	if err != nil {
		return nil, failed(c, "mongo", err)
	}
	return out, nil
}

// ClickHouseContainer — ClickHouse на нативном порту 9000.
type ClickHouseContainer struct {
	testcontainers.Container
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// NewClickHouseContainer поднимает clickhouse-server:24-alpine.
func NewClickHouseContainer(ctx context.Context) (*ClickHouseContainer, error) {
	out := &ClickHouseContainer{User: "default", Database: "default"}
	c, err := clickhouse.Run(ctx, "clickhouse/clickhouse-server:24-alpine",
		clickhouse.WithUsername(out.User),
		clickhouse.WithPassword(out.Password),
		clickhouse.WithDatabase(out.Database),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse container: %w", err)
	}
	out.Container = c
	if out.Host, err = out.Container.Host(ctx); err == nil {
		out.Port, err = mappedPort(c.MappedPort(ctx, "9000"))
	}
	if err != nil {
		return nil, failed(c, "clickhouse", err)
	}
	return out, nil
}

type terminator interface {
	Terminate(ctx context.Context, opts ...testcontainers.TerminateOption) error
}

// start поднимает контейнер для теста: в -short режиме тест пропускается, остановка — в t.Cleanup.
func start[C terminator](t *testing.T, name string, run func(ctx context.Context) (C, error)) C {
	t.Helper()
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := run(ctx)
	if err != nil {
		t.Fatalf("не удалось поднять %s: %v", name, err)
	}
	t.Cleanup(func() {
		if err := c.Terminate(context.Background()); err != nil {
			t.Logf("ошибка остановки %s: %v", name, err)
		}
	})
	return c
}

// Postgres поднимает PostgreSQL на время теста.
func Postgres(t *testing.T) *PostgresContainer {
	return start(t, "PostgreSQL", NewPostgresContainer)
}

// Redis поднимает Redis на время теста.
func Redis(t *testing.T) *RedisContainer {
	return start(t, "Redis", NewRedisContainer)
}

// Mongo поднимает MongoDB на время теста.
func Mongo(t *testing.T) *MongoContainer {
	return start(t, "MongoDB", NewMongoContainer)
}

// ClickHouse поднимает ClickHouse на время теста.
func ClickHouse(t *testing.T) *ClickHouseContainer {
	return start(t, "ClickHouse", NewClickHouseContainer)
}
