package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"ventanaCalc/internal/domain"
)

// IEntryAnalytics — запись событий истории в хранилище для аналитики (например, ClickHouse).
type IEntryAnalytics interface {
	WriteEvent(ctx context.Context, ev domain.EntryEvent) error
}
