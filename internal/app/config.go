package app

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	apigrpc "ventanaCalc/internal/api/grpc"
	"ventanaCalc/internal/api/http"
	"ventanaCalc/internal/infrastructure/click"
	"ventanaCalc/internal/infrastructure/file"
	"ventanaCalc/internal/infrastructure/kafka"
	"ventanaCalc/internal/infrastructure/mongo"
	"ventanaCalc/internal/infrastructure/pg"
	"ventanaCalc/internal/infrastructure/redis"
	"ventanaCalc/internal/pkg/logger"
)

const AppName = "VENTANA"

// Бэкенды хранилища истории.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// StorageConfig — выбор бэкенда истории. Переменные: VENTANA_STORAGE_BACKEND, VENTANA_STORAGE_DIR.
type StorageConfig struct {
	Backend string `envconfig:"BACKEND" default:"file"`
	file.Config
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом VENTANA.
type Config struct {
	Log        logger.Config     `envconfig:"LOG"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	Grpc       apigrpc.Config    `envconfig:"GRPC"`
	Storage    StorageConfig     `envconfig:"STORAGE"`
	Redis      redis.Config      `envconfig:"REDIS"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
}

// Validate проверяет значения, которые envconfig проверить не может.
func (c Config) Validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendRedis, BackendPostgres, BackendMongo:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.ClickHouse.Enabled && !c.Kafka.Enabled {
		return fmt.Errorf("clickhouse analytics requires kafka to be enabled")
	}
	return nil
}

// envFile возвращает путь к .env: VENTANA_ENV_FILE или ".env" в рабочем каталоге.
func envFile() string {
	if p := os.Getenv(AppName + "_ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(envFile()); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Usage печатает таблицу переменных окружения с дефолтами (флаг -env).
func Usage() error {
	var cfg Config
	return envconfig.Usage(AppName, &cfg)
}
