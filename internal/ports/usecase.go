package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"ventanaCalc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики: расчёт раскроя, история, обработка событий из Kafka.
type ICalculatorUseCase interface {
	Systems() []domain.ProfileSystem
	Calculate(systemID string, width, height float64) (domain.MeasurementSet, bool)
	SaveEntry(ctx context.Context, description, systemID string, width, height float64) (*domain.HistoryEntry, error)
	History(ctx context.Context) ([]domain.HistoryEntry, error)
	Entry(ctx context.Context, id string) (*domain.HistoryEntry, error)
	RemoveEntry(ctx context.Context, id string) error
	ClearHistory(ctx context.Context) error
	HandleEntryEvent(ctx context.Context, ev domain.EntryEvent) error
}
