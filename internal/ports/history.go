package ports

//go:generate mockgen -source=history.go -destination=../mocks/history_mock.go -package=mocks

import (
	"context"

	"ventanaCalc/internal/domain"
)

// HistoryStore — контракт журнала сохранённых расчётов (последние сначала).
type HistoryStore interface {
	GetAll(ctx context.Context) ([]domain.HistoryEntry, error)
	Get(ctx context.Context, id string) (domain.HistoryEntry, bool, error)
	Save(ctx context.Context, entry domain.NewEntry) (domain.HistoryEntry, error)
	Remove(ctx context.Context, id string) error
	ClearAll(ctx context.Context) error
}
