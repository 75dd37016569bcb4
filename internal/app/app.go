package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	apigrpc "ventanaCalc/internal/api/grpc"
	apihttp "ventanaCalc/internal/api/http"
	"ventanaCalc/internal/api/http/controllers/calculator"
	"ventanaCalc/internal/api/http/controllers/system"
	"ventanaCalc/internal/history"
	"ventanaCalc/internal/infrastructure/click"
	"ventanaCalc/internal/infrastructure/kafka"
	"ventanaCalc/internal/pkg/logger"
	"ventanaCalc/internal/ports"
	calcUsecase "ventanaCalc/internal/usecase/calculator"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (хранилище подключается в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает хранилище истории, Kafka и ClickHouse (если включены), запускает gRPC и HTTP и блокируется до SIGINT/SIGTERM.
func (a *App) Run() error {
	log := logger.FromConfig(a.cfg.Log)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, closeKV, err := openStorage(ctx, a.cfg, log)
	if err != nil {
		return err
	}
	defer closeKV()
	store := history.New(kv, log)

	var producer ports.IProducer
	if a.cfg.Kafka.Enabled {
		p := kafka.NewProducer(&a.cfg.Kafka)
		defer p.Close()
		producer = p
	}

	var analytics ports.IEntryAnalytics
	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(ctx, &a.cfg.ClickHouse)
		if err != nil {
			return fmt.Errorf("clickhouse: %w", err)
		}
		defer ch.Close()
		w := click.NewEventWriter(ch)
		if err := w.EnsureTable(ctx); err != nil {
			return fmt.Errorf("clickhouse table: %w", err)
		}
		analytics = w
	}

	uc := calcUsecase.New(store, producer, analytics, log)

	if a.cfg.Kafka.Enabled && analytics != nil {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	reg := apihttp.NewRegistry()

	var grpcSrv *apigrpc.Server
	if a.cfg.Grpc.Enabled {
		grpcSrv = apigrpc.NewServer(a.cfg.Grpc.Addr(), uc, log, reg)
		go func() {
			if err := grpcSrv.Start(); err != nil {
				slog.Error("grpc server failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server, reg, log)
	srv.AddController(
		system.New(kv, a.cfg.Storage.Backend, log),
		calculator.New(uc, log))

	slog.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"grpc", a.cfg.Grpc.Addr(),
		"storage", a.cfg.Storage.Backend,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	if err := srv.Start(ctx); err != nil {
		return err
	}
	if grpcSrv == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return grpcSrv.Stop(shutdownCtx)
}
