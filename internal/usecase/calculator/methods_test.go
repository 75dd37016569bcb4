package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// Тест 1: сохранение — пересчёт на сервере, запись в журнал, событие в брокер
func TestSaveEntry_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHistory := mocks.NewMockHistoryStore(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	want, _ := domain.Calculate(domain.System520, 120, 100)
	saved := domain.HistoryEntry{
		ID:          "id-1",
		Description: "cocina",
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		SystemID:    domain.System520,
		SystemName:  "Sistema 520",
		Width:       120,
		Height:      100,
		Results:     want,
	}

	gomock.InOrder(
		mockHistory.EXPECT().
			Save(gomock.Any(), domain.NewEntry{
				Description: " cocina ",
				SystemID:    domain.System520,
				SystemName:  "Sistema 520",
				Width:       120,
				Height:      100,
				Results:     want,
			}).
			Return(saved, nil),
		mockBroker.EXPECT().
			Send(gomock.Any(), []byte("id-1"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value []byte) error {
				var ev domain.EntryEvent
				require.NoError(t, json.Unmarshal(value, &ev))
				assert.Equal(t, domain.EventSaved, ev.Type)
				require.NotNil(t, ev.Entry)
				assert.Equal(t, saved, *ev.Entry)
				return nil
			}),
	)

	uc := New(mockHistory, mockBroker, nil, newTestLogger())
	got, err := uc.SaveEntry(context.Background(), " cocina ", domain.System520, 120, 100)

	require.NoError(t, err)
	assert.Equal(t, saved, *got)
}

// Тест 2: ошибка брокера не отменяет сохранение
func TestSaveEntry_BrokerFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHistory := mocks.NewMockHistoryStore(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockHistory.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.HistoryEntry{ID: "x"}, nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	uc := New(mockHistory, mockBroker, nil, newTestLogger())
	got, err := uc.SaveEntry(context.Background(), "a", domain.System744, 150, 120)

	require.NoError(t, err)
	assert.Equal(t, "x", got.ID)
}

// Тест 3: невалидный ввод — журнал не трогается
func TestSaveEntry_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		systemID string
		width    float64
		height   float64
		wantErr  error
	}{
		{name: "неизвестная система", systemID: "999", width: 100, height: 100, wantErr: domain.ErrUnknownSystem},
		{name: "система без формулы", systemID: domain.System16, width: 100, height: 100, wantErr: domain.ErrUnknownSystem},
		{name: "нулевая ширина", systemID: domain.System520, width: 0, height: 100, wantErr: domain.ErrNotComputable},
		{name: "отрицательная высота", systemID: domain.System744, width: 100, height: -5, wantErr: domain.ErrNotComputable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockHistory := mocks.NewMockHistoryStore(ctrl)

			uc := New(mockHistory, nil, nil, newTestLogger())
			got, err := uc.SaveEntry(context.Background(), "desc", tt.systemID, tt.width, tt.height)

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// Тест 4: ошибка хранилища пробрасывается, событие не отправляется
func TestSaveEntry_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHistory := mocks.NewMockHistoryStore(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	boom := errors.New("disk full")

	mockHistory.EXPECT().Save(gomock.Any(), gomock.Any()).Return(domain.HistoryEntry{}, boom)

	uc := New(mockHistory, mockBroker, nil, newTestLogger())
	got, err := uc.SaveEntry(context.Background(), "a", domain.System520, 120, 100)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, boom)
}

// Тест 5: история и одна запись
func TestHistoryAndEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHistory := mocks.NewMockHistoryStore(ctrl)

	expected := []domain.HistoryEntry{{ID: "2"}, {ID: "1"}}
	mockHistory.EXPECT().GetAll(gomock.Any()).Return(expected, nil)
	mockHistory.EXPECT().Get(gomock.Any(), "1").Return(expected[1], true, nil)
	mockHistory.EXPECT().Get(gomock.Any(), "nope").Return(domain.HistoryEntry{}, false, nil)

	// Для чтения не нужны broker и analytics — передаём nil
	uc := New(mockHistory, nil, nil, newTestLogger())

	list, err := uc.History(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, list)

	e, err := uc.Entry(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", e.ID)

	_, err = uc.Entry(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)
}

// Тест 6: удаление и очистка публикуют события
func TestRemoveAndClear(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHistory := mocks.NewMockHistoryStore(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	gomock.InOrder(
		mockHistory.EXPECT().Remove(gomock.Any(), "id-1").Return(nil),
		mockBroker.EXPECT().Send(gomock.Any(), []byte("id-1"), gomock.Any()).Return(nil),
		mockHistory.EXPECT().ClearAll(gomock.Any()).Return(nil),
		mockBroker.EXPECT().Send(gomock.Any(), []byte(""), gomock.Any()).Return(nil),
	)

	uc := New(mockHistory, mockBroker, nil, newTestLogger())
	require.NoError(t, uc.RemoveEntry(context.Background(), "id-1"))
	require.NoError(t, uc.ClearHistory(context.Background()))
}

func TestRemove_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHistory := mocks.NewMockHistoryStore(ctrl)
	mockHistory.EXPECT().Remove(gomock.Any(), "id").Return(errors.New("io"))
	mockHistory.EXPECT().ClearAll(gomock.Any()).Return(errors.New("io"))

	uc := New(mockHistory, mocks.NewMockIProducer(ctrl), nil, newTestLogger())
	assert.Error(t, uc.RemoveEntry(context.Background(), "id"))
	assert.Error(t, uc.ClearHistory(context.Background()))
}

// Тест 7: событие из Kafka уходит в аналитику
func TestHandleEntryEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAnalytics := mocks.NewMockIEntryAnalytics(ctrl)

	ev := domain.EntryEvent{Type: domain.EventRemoved, ID: "a"}
	mockAnalytics.EXPECT().WriteEvent(gomock.Any(), ev).Return(nil)
	mockAnalytics.EXPECT().WriteEvent(gomock.Any(), ev).Return(errors.New("click down"))

	uc := New(nil, nil, mockAnalytics, newTestLogger())
	assert.NoError(t, uc.HandleEntryEvent(context.Background(), ev))
	assert.Error(t, uc.HandleEntryEvent(context.Background(), ev))

	bare := New(nil, nil, nil, newTestLogger())
	assert.Error(t, bare.HandleEntryEvent(context.Background(), ev))
}

func TestCalculateAndSystems(t *testing.T) {
	uc := New(nil, nil, nil, newTestLogger())

	ms, ok := uc.Calculate(domain.System744, 150, 120)
	require.True(t, ok)
	v, _ := ms.Get(domain.KeyVidrioAncho)
	assert.Equal(t, 69.7, v)

	_, ok = uc.Calculate(domain.System744, 0, 120)
	assert.False(t, ok)

	assert.Len(t, uc.Systems(), 4)
}

func TestSaveEntry_UnavailableSystem(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := New(mocks.NewMockHistoryStore(ctrl), nil, nil, newTestLogger())
	uc.registry.Register(domain.System16, func(w, h float64) domain.MeasurementSet {
		return domain.NewMeasurementSet(domain.Measurement{Name: "marco", Value: w})
	})

	_, err := uc.SaveEntry(context.Background(), "a", domain.System16, 100, 100)
	assert.ErrorIs(t, err, domain.ErrSystemUnavailable)
}
