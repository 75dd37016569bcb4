package interceptors

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingUnaryInterceptor логирует каждый unary RPC: метод, длительность, код/ошибка (аналог HTTP request logger).
// Internal и Unknown пишутся уровнем Error, прочие ошибки клиента — Warn.
// Если reg не nil, в нём регистрируется счётчик ventana_grpc_requests_total{method,code}.
func LoggingUnaryInterceptor(log *slog.Logger, reg prometheus.Registerer) grpc.UnaryServerInterceptor {
	if log == nil {
		log = slog.Default()
	}
	var requests *prometheus.CounterVec
	if reg != nil {
		requests = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "ventana",
			Name:      "grpc_requests_total",
			Help:      "Total number of unary gRPC requests",
		}, []string{"method", "code"})
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		latency := time.Since(start)

		code := status.Code(err)
		if requests != nil {
			requests.WithLabelValues(info.FullMethod, code.String()).Inc()
		}

		attrs := []any{"method", info.FullMethod, "latency_ms", latency.Milliseconds(), "grpc_code", code}
		switch {
		case err == nil:
			log.Info("grpc request", attrs...)
		case code == codes.Internal || code == codes.Unknown:
			log.Error("grpc request", append(attrs, "error", errorMessage(err))...)
		default:
			log.Warn("grpc request", append(attrs, "error", errorMessage(err))...)
		}
		return resp, err
	}
}

func errorMessage(err error) string {
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return err.Error()
}
