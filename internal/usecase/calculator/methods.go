package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ventanaCalc/internal/domain"
)

// Systems — каталог профильных систем.
func (u *UseCase) Systems() []domain.ProfileSystem {
	return domain.ListProfileSystems()
}

// Calculate — чистый расчёт; false означает «данных пока недостаточно», а не ошибку.
func (u *UseCase) Calculate(systemID string, width, height float64) (domain.MeasurementSet, bool) {
	return u.registry.Calculate(systemID, width, height)
}

// SaveEntry пересчитывает раскрой на сервере, сохраняет его в журнал и публикует событие.
func (u *UseCase) SaveEntry(ctx context.Context, description, systemID string, width, height float64) (*domain.HistoryEntry, error) {
	sys, ok := domain.FindProfileSystem(systemID)
	if !ok || !u.registry.Has(systemID) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSystem, systemID)
	}
	if !sys.Available {
		return nil, fmt.Errorf("%w: %s", domain.ErrSystemUnavailable, systemID)
	}
	results, ok := u.registry.Calculate(systemID, width, height)
	if !ok {
		return nil, domain.ErrNotComputable
	}

	entry, err := u.history.Save(ctx, domain.NewEntry{
		Description: description,
		SystemID:    sys.ID,
		SystemName:  sys.Name,
		Width:       width,
		Height:      height,
		Results:     results,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrEmptyDescription) {
			u.log.Error("history save failed", "system", systemID, "error", err)
		}
		return nil, err
	}
	u.log.Info("entry saved", "id", entry.ID, "system", entry.SystemID, "width", width, "height", height)

	u.publish(ctx, domain.EntryEvent{Type: domain.EventSaved, ID: entry.ID, Entry: &entry, At: entry.CreatedAt})
	return &entry, nil
}

// History — журнал, последние сначала.
func (u *UseCase) History(ctx context.Context) ([]domain.HistoryEntry, error) {
	return u.history.GetAll(ctx)
}

// Entry — одна запись журнала; domain.ErrEntryNotFound, если её нет.
func (u *UseCase) Entry(ctx context.Context, id string) (*domain.HistoryEntry, error) {
	e, found, err := u.history.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, id)
	}
	return &e, nil
}

// RemoveEntry удаляет запись; повторное удаление не ошибка.
func (u *UseCase) RemoveEntry(ctx context.Context, id string) error {
	if err := u.history.Remove(ctx, id); err != nil {
		u.log.Error("history remove failed", "id", id, "error", err)
		return err
	}
	u.log.Info("entry removed", "id", id)
	u.publish(ctx, domain.EntryEvent{Type: domain.EventRemoved, ID: id, At: u.now().UTC()})
	return nil
}

// ClearHistory очищает журнал целиком.
func (u *UseCase) ClearHistory(ctx context.Context) error {
	if err := u.history.ClearAll(ctx); err != nil {
		u.log.Error("history clear failed", "error", err)
		return err
	}
	u.log.Info("history cleared")
	u.publish(ctx, domain.EntryEvent{Type: domain.EventCleared, At: u.now().UTC()})
	return nil
}

// publish отправляет событие в брокер. Ошибка брокера не отменяет уже сохранённое изменение.
func (u *UseCase) publish(ctx context.Context, ev domain.EntryEvent) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("event encode", "type", ev.Type, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(ev.ID), value); err != nil {
		u.log.Warn("broker send", "type", ev.Type, "id", ev.ID, "error", err)
		return
	}
	u.log.Debug("event published", "type", ev.Type, "id", ev.ID)
}

// HandleEntryEvent вызывается консьюмером при получении сообщения из топика истории.
func (u *UseCase) HandleEntryEvent(ctx context.Context, ev domain.EntryEvent) error {
	if u.analytics == nil {
		return errors.New("analytics not configured")
	}
	if err := u.analytics.WriteEvent(ctx, ev); err != nil {
		u.log.Warn("analytics write", "type", ev.Type, "error", err)
		return err
	}
	u.log.Info("event stored to click", "type", ev.Type, "id", ev.ID)
	return nil
}
