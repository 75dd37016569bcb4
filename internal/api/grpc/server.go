package grpc

import (
	"context"
	"log/slog"
	"net"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"

	"ventanaCalc/internal/api/grpc/interceptors"
	"ventanaCalc/internal/api/grpc/window"
	"ventanaCalc/internal/ports"
)

// Config — настройки gRPC-сервера. Переменные: VENTANA_GRPC_ENABLED, VENTANA_GRPC_HOST, VENTANA_GRPC_PORT.
type Config struct {
	Enabled bool   `envconfig:"ENABLED" default:"true"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    string `envconfig:"PORT" default:"9090"`
}

// Addr возвращает host:port.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// Server — gRPC-сервер: регистрирует сервисы и слушает порт.
type Server struct {
	grpc *grpc.Server
	addr string
}

// NewServer создаёт gRPC-сервер и регистрирует WindowService. Логирующий интерцептор пишет метод, latency_ms и grpc_code (аналог HTTP middleware)
// и считает запросы в reg (nil — без метрик).
func NewServer(addr string, uc ports.ICalculatorUseCase, log *slog.Logger, reg prometheus.Registerer) *Server {
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.LoggingUnaryInterceptor(log, reg)))
	window.Register(s, window.New(uc, log))
	return &Server{grpc: s, addr: addr}
}

// Start слушает addr и принимает соединения (блокируется). Остановка через Stop().
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(lis)
}

// Serve принимает соединения на готовом listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpc.Serve(lis)
}

// Stop останавливает сервер (graceful).
func (s *Server) Stop(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.grpc.Stop()
		return ctx.Err()
	}
}
