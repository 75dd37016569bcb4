package domain

import "time"

// HistoryEntry — сохранённый расчёт с подписью пользователя. После создания не меняется.
type HistoryEntry struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"date"`
	SystemID    string         `json:"systemId"`
	SystemName  string         `json:"systemName"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	Results     MeasurementSet `json:"results"`
}

// NewEntry — данные для сохранения; id и дату проставляет хранилище.
type NewEntry struct {
	Description string
	SystemID    string
	SystemName  string
	Width       float64
	Height      float64
	Results     MeasurementSet
}

// Типы событий истории.
const (
	EventSaved   = "saved"
	EventRemoved = "removed"
	EventCleared = "cleared"
)

// EntryEvent — событие изменения истории, уходит в брокер.
type EntryEvent struct {
	Type  string        `json:"type"`
	Entry *HistoryEntry `json:"entry,omitempty"`
	ID    string        `json:"id,omitempty"`
	At    time.Time     `json:"at"`
}
