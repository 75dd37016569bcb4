package click

import (
	"encoding/json"
	"time"

	"ventanaCalc/internal/domain"
)

type row struct {
	event    string
	entryID  string
	systemID string
	width    float64
	height   float64
	results  string
	at       time.Time
}

// eventRow раскладывает событие в колонки таблицы.
func eventRow(ev domain.EntryEvent) row {
	r := row{event: ev.Type, entryID: ev.ID, at: ev.At, results: "{}"}
	if e := ev.Entry; e != nil {
		r.entryID = e.ID
		r.systemID = e.SystemID
		r.width = e.Width
		r.height = e.Height
		if b, err := json.Marshal(e.Results); err == nil {
			r.results = string(b)
		}
	}
	if r.at.IsZero() {
		r.at = time.Now().UTC()
	}
	return r
}

func (r row) args() []any {
	return []any{r.event, r.entryID, r.systemID, r.width, r.height, r.results, r.at}
}
