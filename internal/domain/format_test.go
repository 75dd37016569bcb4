package domain

import "testing"

func TestFormatMeasure(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{58.5, "58.5"},
		{120, "120"},
		{0, "0"},
		{56.66, "56.7"},
		{-1.5, "-1.5"},
		{97, "97"},
		{1000000, "1000000"},
		{0.04, "0.0"},
		{60.25, "60.3"},
		{99.25, "99.3"},
		{1.25, "1.3"},
		{-1.25, "-1.3"},
		{0.25, "0.3"},
		{0.15, "0.1"},
		{2.675, "2.7"},
	}
	for _, tt := range tests {
		if got := FormatMeasure(tt.in); got != tt.want {
			t.Errorf("FormatMeasure(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMeasure_HalfTenthFromFormula(t *testing.T) {
	ms, ok := Calculate(System744, 120.5, 100.25)
	if !ok {
		t.Fatal("744 120.5x100.25 not computable")
	}
	horizontal, _ := ms.Get("horizontal")
	jamba, _ := ms.Get("jamba")
	if got := FormatMeasure(horizontal); got != "60.3" {
		t.Errorf("horizontal = %q, want 60.3", got)
	}
	if got := FormatMeasure(jamba); got != "99.3" {
		t.Errorf("jamba = %q, want 99.3", got)
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"cabezal":      "Cabezal",
		"vidrio_ancho": "Vidrio ancho",
		"vidrio_alto":  "Vidrio alto",
		"a_b_c":        "A b c",
		"":             "",
		"ñandu_x":      "Ñandu x",
	}
	for in, want := range tests {
		if got := Label(in); got != want {
			t.Errorf("Label(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{" 120.5cm ", 120.5},
		{"", 0},
		{"abc", 0},
		{".5", 0.5},
		{"5.", 5},
		{"-3", -3},
		{"1e2", 100},
		{"1e", 1},
		{"12,5", 12},
		{".", 0},
		{"+", 0},
	}
	for _, tt := range tests {
		if got := ParseDimension(tt.in); got != tt.want {
			t.Errorf("ParseDimension(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	ms, _ := Calculate(System520, 120, 100)
	rows := Rows(ms)
	if len(rows) != 8 {
		t.Fatalf("rows = %d, want 8", len(rows))
	}
	if rows[2].Label != "Horizontal" || rows[2].Display != "58.5 cm" {
		t.Errorf("rows[2] = %+v", rows[2])
	}
	if rows[6].Label != "Vidrio ancho" || rows[6].Display != "56.7 cm" {
		t.Errorf("rows[6] = %+v", rows[6])
	}
	if rows[0].Display != "120 cm" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
}
