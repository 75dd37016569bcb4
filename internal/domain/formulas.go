package domain

import "math"

// Имена размеров раскроя.
const (
	KeyCabezal     = "cabezal"
	KeySillar      = "sillar"
	KeyHorizontal  = "horizontal"
	KeyJamba       = "jamba"
	KeyEganche     = "eganche"
	KeyTraslape    = "traslape"
	KeyVidrioAncho = "vidrio_ancho"
	KeyVidrioAlto  = "vidrio_alto"
)

// Formula — чистая функция (ширина, высота) -> набор размеров.
type Formula func(width, height float64) MeasurementSet

// Registry — открытое отображение id системы -> формула.
type Registry struct {
	formulas map[string]Formula
}

// NewRegistry создаёт пустой реестр.
func NewRegistry() *Registry {
	return &Registry{formulas: make(map[string]Formula)}
}

// Register добавляет или заменяет формулу системы. Вызывать до начала расчётов.
func (r *Registry) Register(systemID string, f Formula) {
	r.formulas[systemID] = f
}

// Has — есть ли формула для системы.
func (r *Registry) Has(systemID string) bool {
	_, ok := r.formulas[systemID]
	return ok
}

// Calculate считает раскрой. false — посчитать нельзя (нет формулы, размер <= 0 или не число).
func (r *Registry) Calculate(systemID string, width, height float64) (MeasurementSet, bool) {
	f, ok := r.formulas[systemID]
	if !ok || !positive(width) || !positive(height) {
		return MeasurementSet{}, false
	}
	return f(width, height), true
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// slidingFormula — формула раздвижного окна с калибровочными отступами системы.
type slidingFormula struct {
	horizontal  float64 // вычет из половины ширины
	jamba       float64
	engage      float64 // eganche и traslape
	glassWidth  float64 // вычет из половины ширины
	glassHeight float64
}

func (c slidingFormula) apply(w, h float64) MeasurementSet {
	return NewMeasurementSet(
		Measurement{KeyCabezal, w},
		Measurement{KeySillar, w},
		Measurement{KeyHorizontal, w/2 - c.horizontal},
		Measurement{KeyJamba, h - c.jamba},
		Measurement{KeyEganche, h - c.engage},
		Measurement{KeyTraslape, h - c.engage},
		Measurement{KeyVidrioAncho, w/2 - c.glassWidth},
		Measurement{KeyVidrioAlto, h - c.glassHeight},
	)
}

// DefaultRegistry — реестр с эталонными формулами систем 520 и 744.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(System520, slidingFormula{horizontal: 1.5, jamba: 1.5, engage: 3, glassWidth: 3.3, glassHeight: 9.3}.apply)
	r.Register(System744, slidingFormula{horizontal: 0, jamba: 1, engage: 2, glassWidth: 5.3, glassHeight: 9.3}.apply)
	return r
}

var defaultRegistry = DefaultRegistry()

// Calculate считает раскрой по реестру по умолчанию.
func Calculate(systemID string, width, height float64) (MeasurementSet, bool) {
	return defaultRegistry.Calculate(systemID, width, height)
}
