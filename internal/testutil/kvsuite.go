package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/history"
	"ventanaCalc/internal/ports"
)

// Logger возвращает логгер для тестов, который ничего не пишет.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewEntry возвращает готовую к сохранению запись: Sistema 520, 120 x 100 cm.
func NewEntry(desc string) domain.NewEntry {
	set, _ := domain.Calculate(domain.System520, 120, 100)
	return domain.NewEntry{
		Description: desc,
		SystemID:    domain.System520,
		SystemName:  "Sistema 520",
		Width:       120,
		Height:      100,
		Results:     set,
	}
}

// RunKVStoreSuite проверяет контракт ports.KVStore на конкретном бэкенде.
// newKV должен возвращать хранилище с пустым пространством ключей.
func RunKVStoreSuite(t *testing.T, newKV func(t *testing.T) ports.KVStore) {
	t.Run("missing key", func(t *testing.T) {
		kv := newKV(t)
		got, found, err := kv.Get(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, got)
	})

	t.Run("set get overwrite", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()
		require.NoError(t, kv.Set(ctx, "k", []byte(`[{"id":"1"}]`)))
		require.NoError(t, kv.Set(ctx, "k", []byte(`[]`)))

		got, found, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()
		require.NoError(t, kv.Set(ctx, "k", []byte("v")))
		require.NoError(t, kv.Delete(ctx, "k"))
		require.NoError(t, kv.Delete(ctx, "k"))

		_, found, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("keys are independent", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()
		require.NoError(t, kv.Set(ctx, "a", []byte("1")))
		require.NoError(t, kv.Set(ctx, "b", []byte("2")))
		require.NoError(t, kv.Delete(ctx, "a"))

		got, found, err := kv.Get(ctx, "b")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []byte("2"), got)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newKV(t).Ping(context.Background()))
	})

	t.Run("history store over backend", func(t *testing.T) {
		kv := newKV(t)
		ctx := context.Background()
		store := history.New(kv, Logger())

		var wg sync.WaitGroup
		for i := range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.Save(ctx, NewEntry(fmt.Sprintf("ventana %d", i)))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		reloaded, err := history.New(kv, Logger()).GetAll(ctx)
		require.NoError(t, err)
		cached, err := store.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, reloaded, 5)
		assert.Equal(t, cached, reloaded)

		require.NoError(t, store.ClearAll(ctx))
		reloaded, err = history.New(kv, Logger()).GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, reloaded)
	})
}
