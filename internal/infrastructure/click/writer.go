package click

import (
	"context"
	"fmt"
	"strings"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"
)

const calculationsTable = "default.window_calculations"

// columns — колонки таблицы в порядке row.args().
var columns = []struct{ name, typ string }{
	{"event", "LowCardinality(String)"},
	{"entry_id", "String"},
	{"system_id", "LowCardinality(String)"},
	{"width", "Float64"},
	{"height", "Float64"},
	{"results", "String"},
	{"created_at", "DateTime64(3)"},
}

func createTableQuery() string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = c.name + " " + c.typ
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s) ENGINE = MergeTree() PARTITION BY toYYYYMM(created_at) ORDER BY (system_id, created_at)",
		calculationsTable, strings.Join(defs, ", "))
}

func insertQuery() string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.name
	}
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", calculationsTable, strings.Join(names, ", "), marks)
}

var _ ports.IEntryAnalytics = (*EventWriter)(nil)

// EventWriter — аналитика по истории: одна строка на событие saved/removed/cleared.
type EventWriter struct {
	db     *Client
	insert string
}

func NewEventWriter(db *Client) *EventWriter {
	return &EventWriter{db: db, insert: insertQuery()}
}

// EnsureTable создаёт таблицу при старте; повторный вызов ничего не меняет.
func (w *EventWriter) EnsureTable(ctx context.Context) error {
	if _, err := w.db.DB().ExecContext(ctx, createTableQuery()); err != nil {
		return fmt.Errorf("create %s: %w", calculationsTable, err)
	}
	return nil
}

// WriteEvent реализует ports.IEntryAnalytics.
func (w *EventWriter) WriteEvent(ctx context.Context, ev domain.EntryEvent) error {
	if _, err := w.db.DB().ExecContext(ctx, w.insert, eventRow(ev).args()...); err != nil {
		return fmt.Errorf("insert %s event: %w", ev.Type, err)
	}
	return nil
}
