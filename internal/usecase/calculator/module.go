package calculator

import (
	"log/slog"
	"time"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"
)

var _ ports.ICalculatorUseCase = (*UseCase)(nil)

// UseCase — бизнес-логика: расчёт раскроя и журнал сохранённых расчётов.
type UseCase struct {
	registry  *domain.Registry
	history   ports.HistoryStore
	broker    ports.IProducer       // может быть nil: события не публикуются
	analytics ports.IEntryAnalytics // может быть nil: нужен только консьюмеру
	log       *slog.Logger
	now       func() time.Time
}

// New создаёт юзкейс калькулятора с реестром формул по умолчанию.
func New(history ports.HistoryStore, broker ports.IProducer, analytics ports.IEntryAnalytics, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		registry:  domain.DefaultRegistry(),
		history:   history,
		broker:    broker,
		analytics: analytics,
		log:       log,
		now:       time.Now,
	}
}
