package file

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"

	"ventanaCalc/internal/ports"
)

var _ ports.KVStore = (*KV)(nil)

// Config — настройки файлового хранилища. Переменные: VENTANA_STORAGE_DIR.
type Config struct {
	Dir string `envconfig:"DIR" default:"data"`
}

// KV хранит каждое значение в отдельном файле каталога Dir.
type KV struct {
	dir string
	log *slog.Logger
}

// New создаёт каталог хранилища, если его нет.
func New(cfg *Config, log *slog.Logger) (*KV, error) {
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("file storage: empty dir")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("file storage mkdir: %w", err)
	}
	return &KV{dir: cfg.Dir, log: log}, nil
}

func (k *KV) path(key string) string {
	return filepath.Join(k.dir, url.PathEscape(key)+".json")
}

// Get читает значение. Нет файла — found == false.
func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(k.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		k.log.Debug("file get failed", "key", key, "error", err)
		return nil, false, err
	}
	return data, true, nil
}

// Set атомарно перезаписывает значение.
func (k *KV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := atomicWriteFile(k.path(key), value, 0o644); err != nil {
		k.log.Debug("file set failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Delete удаляет значение. Отсутствие файла — не ошибка.
func (k *KV) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(k.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		k.log.Debug("file delete failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет, что каталог доступен (для readiness).
func (k *KV) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fi, err := os.Stat(k.dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("file storage: %s is not a directory", k.dir)
	}
	return nil
}
