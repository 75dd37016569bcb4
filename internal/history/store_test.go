package history

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/infrastructure/file"
	"ventanaCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newFileKV(t *testing.T) *file.KV {
	t.Helper()
	kv, err := file.New(&file.Config{Dir: t.TempDir()}, newTestLogger())
	require.NoError(t, err)
	return kv
}

func sampleEntry(t *testing.T, desc string) domain.NewEntry {
	t.Helper()
	ms, ok := domain.Calculate(domain.System520, 120, 100)
	require.True(t, ok)
	return domain.NewEntry{
		Description: desc,
		SystemID:    domain.System520,
		SystemName:  "Sistema 520",
		Width:       120,
		Height:      100,
		Results:     ms,
	}
}

func TestStore_SaveAndGetAll(t *testing.T) {
	ctx := context.Background()
	s := New(newFileKV(t), newTestLogger())

	in := sampleEntry(t, "  Ventana cocina  ")
	saved, err := s.Save(ctx, in)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, "Ventana cocina", saved.Description, "подпись обрезается")

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, saved, all[0])
	assert.Equal(t, in.SystemID, all[0].SystemID)
	assert.Equal(t, in.SystemName, all[0].SystemName)
	assert.Equal(t, in.Width, all[0].Width)
	assert.Equal(t, in.Height, all[0].Height)
	assert.Equal(t, in.Results, all[0].Results)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	kv := newFileKV(t)
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	s1 := New(kv, newTestLogger(), WithClock(func() time.Time { return fixed }))
	saved, err := s1.Save(ctx, sampleEntry(t, "sala"))
	require.NoError(t, err)

	s2 := New(kv, newTestLogger())
	all, err := s2.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, saved, all[0], "новый процесс читает то же, что записано")
	assert.Equal(t, fixed, all[0].CreatedAt)
}

func TestStore_OrderAndDistinctIDs(t *testing.T) {
	ctx := context.Background()
	s := New(newFileKV(t), newTestLogger())

	const n = 25
	ids := make([]string, 0, n)
	for i := range n {
		e, err := s.Save(ctx, sampleEntry(t, fmt.Sprintf("entry %d", i)))
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, n)

	seen := map[string]bool{}
	for i, e := range all {
		assert.Equal(t, fmt.Sprintf("entry %d", n-1-i), e.Description, "последние сначала")
		assert.Equal(t, ids[n-1-i], e.ID)
		assert.False(t, seen[e.ID], "id не повторяются")
		seen[e.ID] = true
	}
}

func TestStore_RemoveIdempotent(t *testing.T) {
	ctx := context.Background()
	s := New(newFileKV(t), newTestLogger())

	a, err := s.Save(ctx, sampleEntry(t, "a"))
	require.NoError(t, err)
	b, err := s.Save(ctx, sampleEntry(t, "b"))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, "missing"))
	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{b, a}, all, "удаление несуществующего id ничего не меняет")

	require.NoError(t, s.Remove(ctx, a.ID))
	require.NoError(t, s.Remove(ctx, a.ID))
	all, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{b}, all)

	_, found, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, found)
	got, found, err := s.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, b, got)
}

func TestStore_ClearAllThenSave(t *testing.T) {
	ctx := context.Background()
	kv := newFileKV(t)
	s := New(kv, newTestLogger())

	for _, d := range []string{"a", "b", "c"} {
		_, err := s.Save(ctx, sampleEntry(t, d))
		require.NoError(t, err)
	}
	require.NoError(t, s.ClearAll(ctx))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, found, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	assert.False(t, found, "запись журнала удалена из хранилища")

	e, err := s.Save(ctx, sampleEntry(t, "d"))
	require.NoError(t, err)
	all, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{e}, all)
}

func TestStore_EmptyDescription(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	// KV не трогается: проверка до загрузки

	s := New(kv, newTestLogger())
	_, err := s.Save(context.Background(), sampleEntry(t, "   "))
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)
}

func TestStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	s := New(newFileKV(t), newTestLogger())
	_, err := s.Save(ctx, sampleEntry(t, "a"))
	require.NoError(t, err)

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	all[0].Description = "changed"
	all = append(all, domain.HistoryEntry{ID: "x"})
	_ = all

	again, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, "a", again[0].Description)
}

func TestStore_LoadsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), Key).Return(nil, false, nil).Times(1)

	s := New(kv, newTestLogger())
	for range 3 {
		all, err := s.GetAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, all)
	}
}

func TestStore_ReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	boom := errors.New("disk gone")

	gomock.InOrder(
		kv.EXPECT().Get(gomock.Any(), Key).Return(nil, false, boom),
		kv.EXPECT().Get(gomock.Any(), Key).Return([]byte(`[]`), true, nil),
	)

	s := New(kv, newTestLogger())
	_, err := s.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, boom)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err, "после ошибки чтения загрузка повторяется")
	assert.Empty(t, all)
}

func TestStore_SaveWriteFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	boom := errors.New("quota exceeded")

	kv.EXPECT().Get(gomock.Any(), Key).Return(nil, false, nil)
	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), Key, gomock.Any()).Return(nil),
		kv.EXPECT().Set(gomock.Any(), Key, gomock.Any()).Return(boom),
	)

	s := New(kv, newTestLogger())
	first, err := s.Save(context.Background(), sampleEntry(t, "first"))
	require.NoError(t, err)

	_, err = s.Save(context.Background(), sampleEntry(t, "second"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorage)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{first}, all, "неудачная запись не попадает в кэш")
}

func TestStore_RemoveWriteFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)

	kv.EXPECT().Get(gomock.Any(), Key).Return(nil, false, nil)
	gomock.InOrder(
		kv.EXPECT().Set(gomock.Any(), Key, gomock.Any()).Return(nil),
		kv.EXPECT().Set(gomock.Any(), Key, gomock.Any()).Return(errors.New("io")),
	)

	s := New(kv, newTestLogger())
	e, err := s.Save(context.Background(), sampleEntry(t, "keep"))
	require.NoError(t, err)

	err = s.Remove(context.Background(), e.ID)
	assert.ErrorIs(t, err, ErrStorage)

	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{e}, all)
}

func TestStore_RemoveMissingDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), Key).Return([]byte(`[]`), true, nil)
	// Set не ожидается

	s := New(kv, newTestLogger())
	require.NoError(t, s.Remove(context.Background(), "nope"))
}

func TestStore_ClearFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)

	kv.EXPECT().Get(gomock.Any(), Key).Return(nil, false, nil)
	kv.EXPECT().Set(gomock.Any(), Key, gomock.Any()).Return(nil)
	kv.EXPECT().Delete(gomock.Any(), Key).Return(errors.New("denied"))

	s := New(kv, newTestLogger())
	e, err := s.Save(context.Background(), sampleEntry(t, "x"))
	require.NoError(t, err)

	assert.ErrorIs(t, s.ClearAll(context.Background()), ErrStorage)
	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.HistoryEntry{e}, all)
}

func TestStore_MalformedBlob(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "не JSON", blob: `{{{not json`},
		{name: "объект вместо массива", blob: `{"id":"1"}`},
		{name: "неверный тип поля", blob: `[{"id":"1","width":"wide"}]`},
		{name: "пробелы", blob: "  \n "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mocks.NewMockKVStore(ctrl)
			kv.EXPECT().Get(gomock.Any(), Key).Return([]byte(tt.blob), true, nil)

			s := New(kv, newTestLogger())
			all, err := s.GetAll(context.Background())
			require.NoError(t, err, "битый журнал не роняет вызывающего")
			assert.Empty(t, all)
		})
	}
}

func TestStore_MalformedBlobKeptAside(t *testing.T) {
	ctx := context.Background()
	kv := newFileKV(t)
	blob := []byte(`[{"id":"1","width":"wide"}]`)
	require.NoError(t, kv.Set(ctx, Key, blob))

	s := New(kv, newTestLogger())
	_, err := s.Save(ctx, sampleEntry(t, "после сбоя"))
	require.NoError(t, err)

	kept, found, err := kv.Get(ctx, Key+CorruptSuffix)
	require.NoError(t, err)
	require.True(t, found, "нечитаемый журнал сохраняется до перезаписи")
	assert.Equal(t, blob, kept)

	// отложенная копия пишется один раз
	require.NoError(t, kv.Set(ctx, Key+CorruptSuffix, []byte("marker")))
	_, err = s.Save(ctx, sampleEntry(t, "ещё одна"))
	require.NoError(t, err)
	kept, _, err = kv.Get(ctx, Key+CorruptSuffix)
	require.NoError(t, err)
	assert.Equal(t, "marker", string(kept))

	all, err := New(kv, newTestLogger()).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStore_MalformedBlobBackupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	blob := []byte(`{{{`)

	kv.EXPECT().Get(gomock.Any(), Key).Return(blob, true, nil)
	kv.EXPECT().Set(gomock.Any(), Key+CorruptSuffix, blob).Return(errors.New("disk full")).Times(2)

	s := New(kv, newTestLogger())
	_, err := s.Save(context.Background(), sampleEntry(t, "x"))
	assert.ErrorIs(t, err, ErrStorage, "без копии журнал не перезаписывается")
	assert.ErrorIs(t, s.ClearAll(context.Background()), ErrStorage, "и не удаляется")
}

func TestStore_DuplicateIDsOnDisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mocks.NewMockKVStore(ctrl)
	kv.EXPECT().Get(gomock.Any(), Key).Return([]byte(
		`[{"id":"1","description":"new"},{"id":"1","description":"old"},{"id":"2","description":"x"}]`), true, nil)

	s := New(kv, newTestLogger())
	all, err := s.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "new", all[0].Description)
	assert.Equal(t, "2", all[1].ID)
}

func TestStore_IDCollisionRetries(t *testing.T) {
	ids := []string{"same", "same", "other"}
	next := 0
	gen := func() (string, error) {
		id := ids[next]
		next++
		return id, nil
	}

	s := New(newFileKV(t), newTestLogger(), WithIDGenerator(gen))
	a, err := s.Save(context.Background(), sampleEntry(t, "a"))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), sampleEntry(t, "b"))
	require.NoError(t, err)

	assert.Equal(t, "same", a.ID)
	assert.Equal(t, "other", b.ID)
}

func TestStore_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	s := New(newFileKV(t), newTestLogger())

	const workers, perWorker = 8, 10
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				_, err := s.Save(ctx, sampleEntry(t, fmt.Sprintf("w%d-%d", w, i)))
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, workers*perWorker, "ни одно сохранение не потеряно")

	fresh := New(s.kv, newTestLogger())
	persisted, err := fresh.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, persisted, "кэш и хранилище совпадают")
}
