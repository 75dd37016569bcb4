package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventanaCalc/internal/ports"
	"ventanaCalc/internal/testutil"
)

func TestKV_Redis(t *testing.T) {
	c := testutil.Redis(t)
	ctx := context.Background()
	client, err := New(ctx, &Config{Host: c.Host, Port: c.Port, KeyPrefix: "ventana:"})
	require.NoError(t, err, "не удалось подключиться к Redis")
	t.Cleanup(func() { client.Close() })

	testutil.RunKVStoreSuite(t, func(t *testing.T) ports.KVStore {
		require.NoError(t, client.FlushDB(ctx).Err(), "не удалось очистить Redis")
		return NewKV(client, "ventana:", testutil.Logger())
	})

	t.Run("key prefix", func(t *testing.T) {
		require.NoError(t, client.FlushDB(ctx).Err())
		kv := NewKV(client, "app1:", testutil.Logger())
		require.NoError(t, kv.Set(ctx, "history_entries", []byte("[]")))

		raw, err := client.Get(ctx, "app1:history_entries").Result()
		require.NoError(t, err)
		assert.Equal(t, "[]", raw)

		_, found, err := NewKV(client, "app2:", testutil.Logger()).Get(ctx, "history_entries")
		require.NoError(t, err)
		assert.False(t, found, "другой префикс — другое пространство ключей")
	})
}
