package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultFile — файл лога по умолчанию (в рабочем каталоге).
const DefaultFile = "app.log"

// Config — настройки логгера. Переменные: VENTANA_LOG_LEVEL, VENTANA_LOG_FILE (пустая строка — только stderr).
type Config struct {
	Level string `envconfig:"LEVEL" default:"info"`
	File  string `envconfig:"FILE" default:"app.log"`
}

// logWriter открывает файл лога и возвращает writer в файл + stderr (и в файл, и в консоль).
// При пустом имени или ошибке открытия файла возвращает только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер с текстовым выводом в app.log и stderr, уровень Info.
func New() *slog.Logger {
	return NewWithLevel("info", DefaultFile)
}

// FromConfig возвращает логгер по конфигу.
func FromConfig(cfg Config) *slog.Logger {
	return NewWithLevel(cfg.Level, cfg.File)
}

// NewWithLevel возвращает логгер с заданным уровнем (debug, info, warn, error) и файлом вывода.
func NewWithLevel(level, file string) *slog.Logger {
	return slog.New(slog.NewTextHandler(logWriter(file), &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel разбирает имя уровня без учёта регистра; неизвестное имя — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
