package domain

import (
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatMeasure: целое без дробной части, иначе ровно один знак после точки.
func FormatMeasure(v float64) string {
	if v == 0 {
		return "0"
	}
	if !math.IsInf(v, 0) && v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if halfTenth(v) {
		// ровно посередине между десятыми: от нуля, как toFixed в браузере
		return strconv.FormatFloat(math.Copysign(math.Floor(math.Abs(v)*10)+1, v)/10, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// halfTenth сообщает, что точное двоичное значение v лежит ровно на x.x5.
func halfTenth(v float64) bool {
	t := v * 20
	if math.IsInf(t, 0) || math.FMA(v, 20, -t) != 0 {
		return false
	}
	return t == math.Trunc(t) && math.Mod(t, 2) != 0
}

// Label превращает ключ размера в подпись: "vidrio_ancho" -> "Vidrio ancho".
func Label(key string) string {
	if key == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(key)
	return string(unicode.ToUpper(r)) + strings.ReplaceAll(key[size:], "_", " ")
}

// ParseDimension разбирает размер из свободного текста: берётся самый длинный числовой префикс.
// Пустой или нечисловой текст даёт 0, который калькулятор отвергает.
func ParseDimension(text string) float64 {
	s := strings.TrimSpace(text)
	end := numericPrefix(s)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// numericPrefix возвращает длину префикса вида [+-]digits[.digits][e[+-]digits].
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Row — строка результата для отображения.
type Row struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// Rows раскладывает набор в строки отображения в исходном порядке.
func Rows(m MeasurementSet) []Row {
	rows := make([]Row, 0, m.Len())
	m.Each(func(name string, value float64) {
		rows = append(rows, Row{
			Key:     name,
			Label:   Label(name),
			Value:   value,
			Display: FormatMeasure(value) + " cm",
		})
	})
	return rows
}
