package calculator

import (
	"bytes"
	"encoding/json"
	"time"

	"ventanaCalc/internal/domain"
)

// Dimension — размер в сантиметрах. Принимает и число, и свободный текст ("120cm" → 120, "abc" → 0).
type Dimension float64

// UnmarshalJSON разбирает число или строку; всё прочее (null, bool) даёт 0.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*d = Dimension(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = Dimension(domain.ParseDimension(s))
		return nil
	}
	*d = 0
	return nil
}

// CalculateRequest — запрос на расчёт раскроя (POST /api/v1/calculate).
type CalculateRequest struct {
	SystemID string    `json:"systemId" binding:"required"`
	Width    Dimension `json:"width"`
	Height   Dimension `json:"height"`
}

// CalculateResponse — результат расчёта. Computable=false, если размеры не заданы или система без формулы.
type CalculateResponse struct {
	Computable bool                   `json:"computable"`
	SystemID   string                 `json:"systemId"`
	Width      float64                `json:"width"`
	Height     float64                `json:"height"`
	Results    *domain.MeasurementSet `json:"results,omitempty"`
	Rows       []domain.Row           `json:"rows,omitempty"`
	Message    string                 `json:"message,omitempty"`
}

// SaveRequest — сохранение расчёта в историю (POST /api/v1/history).
type SaveRequest struct {
	Description string    `json:"description"`
	SystemID    string    `json:"systemId" binding:"required"`
	Width       Dimension `json:"width"`
	Height      Dimension `json:"height"`
}

// HistoryItem — одна запись истории.
type HistoryItem struct {
	ID          string                `json:"id"`
	Description string                `json:"description"`
	Date        time.Time             `json:"date"`
	SystemID    string                `json:"systemId"`
	SystemName  string                `json:"systemName"`
	Width       float64               `json:"width"`
	Height      float64               `json:"height"`
	Summary     string                `json:"summary"`
	Results     domain.MeasurementSet `json:"results"`
	Rows        []domain.Row          `json:"rows"`
}

// HistoryResponse — список записей, новые первыми.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toHistoryItem(e domain.HistoryEntry) HistoryItem {
	return HistoryItem{
		ID:          e.ID,
		Description: e.Description,
		Date:        e.CreatedAt,
		SystemID:    e.SystemID,
		SystemName:  e.SystemName,
		Width:       e.Width,
		Height:      e.Height,
		Summary:     e.SystemName + " · " + domain.FormatMeasure(e.Width) + " x " + domain.FormatMeasure(e.Height) + " cm",
		Results:     e.Results,
		Rows:        domain.Rows(e.Results),
	}
}
