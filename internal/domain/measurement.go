package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Measurement — одна именованная длина реза в сантиметрах.
type Measurement struct {
	Name  string
	Value float64
}

// MeasurementSet — упорядоченный набор размеров. Порядок вставки = порядок отображения.
// После создания не меняется: все аксессоры отдают копии.
type MeasurementSet struct {
	items []Measurement
}

// NewMeasurementSet собирает набор. Повтор имени перезаписывает значение на прежней позиции.
func NewMeasurementSet(items ...Measurement) MeasurementSet {
	out := make([]Measurement, 0, len(items))
	for _, it := range items {
		if i := indexOf(out, it.Name); i >= 0 {
			out[i].Value = it.Value
			continue
		}
		out = append(out, it)
	}
	return MeasurementSet{items: out}
}

func indexOf(items []Measurement, name string) int {
	for i, it := range items {
		if it.Name == name {
			return i
		}
	}
	return -1
}

// Len — количество размеров.
func (m MeasurementSet) Len() int { return len(m.items) }

// IsEmpty — true для пустого набора.
func (m MeasurementSet) IsEmpty() bool { return len(m.items) == 0 }

// Keys возвращает имена в порядке отображения.
func (m MeasurementSet) Keys() []string {
	keys := make([]string, len(m.items))
	for i, it := range m.items {
		keys[i] = it.Name
	}
	return keys
}

// Get возвращает значение по имени.
func (m MeasurementSet) Get(name string) (float64, bool) {
	if i := indexOf(m.items, name); i >= 0 {
		return m.items[i].Value, true
	}
	return 0, false
}

// Items возвращает копию элементов.
func (m MeasurementSet) Items() []Measurement {
	out := make([]Measurement, len(m.items))
	copy(out, m.items)
	return out
}

// Each обходит размеры в порядке вставки.
func (m MeasurementSet) Each(fn func(name string, value float64)) {
	for _, it := range m.items {
		fn(it.Name, it.Value)
	}
}

// Map возвращает размеры как map (порядок теряется).
func (m MeasurementSet) Map() map[string]float64 {
	out := make(map[string]float64, len(m.items))
	for _, it := range m.items {
		out[it.Name] = it.Value
	}
	return out
}

// MarshalJSON пишет набор JSON-объектом с сохранением порядка ключей.
func (m MeasurementSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, it := range m.items {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(it.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(it.Value)
		if err != nil {
			return nil, fmt.Errorf("measurement %q: %w", it.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON читает JSON-объект, сохраняя порядок ключей из входа.
func (m *MeasurementSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = MeasurementSet{}
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("measurements: expected object, got %v", tok)
	}
	var items []Measurement
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("measurements: expected key, got %v", tok)
		}
		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("measurement %q: %w", name, err)
		}
		items = append(items, Measurement{Name: name, Value: v})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = NewMeasurementSet(items...)
	return nil
}
