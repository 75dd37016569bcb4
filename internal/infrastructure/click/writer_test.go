package click

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/testutil"
)

func TestEventWriter_ClickHouse(t *testing.T) {
	c := testutil.ClickHouse(t)
	ctx := context.Background()

	client, err := New(ctx, &Config{
		Host:     c.Host,
		Port:     c.Port,
		Database: c.Database,
		Username: c.User,
		Password: c.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(ctx))

	w := NewEventWriter(client)
	require.NoError(t, w.EnsureTable(ctx))
	require.NoError(t, w.EnsureTable(ctx), "создание таблицы повторяемое")

	set, _ := domain.Calculate(domain.System744, 100, 80)
	at := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	entry := &domain.HistoryEntry{ID: "e1", SystemID: domain.System744, Width: 100, Height: 80, Results: set, CreatedAt: at}

	require.NoError(t, w.WriteEvent(ctx, domain.EntryEvent{Type: domain.EventSaved, Entry: entry, At: at}))
	require.NoError(t, w.WriteEvent(ctx, domain.EntryEvent{Type: domain.EventRemoved, ID: "e1", At: at.Add(time.Minute)}))

	var (
		event, systemID, results string
		width                    float64
	)
	err = client.DB().QueryRowContext(ctx,
		"SELECT event, system_id, width, results FROM "+calculationsTable+" WHERE entry_id = 'e1' ORDER BY created_at LIMIT 1").
		Scan(&event, &systemID, &width, &results)
	require.NoError(t, err)
	assert.Equal(t, domain.EventSaved, event)
	assert.Equal(t, domain.System744, systemID)
	assert.Equal(t, 100.0, width)
	assert.Contains(t, results, `"horizontal":50`)

	var n uint64
	require.NoError(t, client.DB().QueryRowContext(ctx, "SELECT count() FROM "+calculationsTable).Scan(&n))
	assert.Equal(t, uint64(2), n)
}
