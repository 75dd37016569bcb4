package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ventanaCalc/internal/ports"
	"ventanaCalc/internal/testutil"
)

func TestKV_Mongo(t *testing.T) {
	c := testutil.Mongo(t)
	ctx := context.Background()
	client, err := New(ctx, &Config{
		URI:        c.URI(),
		Database:   "ventana_test",
		Collection: "kv_store",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	testutil.RunKVStoreSuite(t, func(t *testing.T) ports.KVStore {
		// Drop несуществующей коллекции не ошибка.
		require.NoError(t, client.Coll().Drop(ctx))
		return NewKV(client, testutil.Logger())
	})
}
