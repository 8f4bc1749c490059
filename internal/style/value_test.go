package style

import (
	"encoding/json"
	"testing"
)

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cssName string
		value   any
		want    string
		wantOK  bool
	}{
		{name: "int gets millimetres", cssName: "width", value: 10, want: "10mm", wantOK: true},
		{name: "float gets millimetres", cssName: "margin", value: 1.5, want: "1.5mm", wantOK: true},
		{name: "whole float", cssName: "height", value: float64(10), want: "10mm", wantOK: true},
		{name: "uint64 from yaml", cssName: "padding", value: uint64(3), want: "3mm", wantOK: true},
		{name: "json number", cssName: "width", value: json.Number("4"), want: "4mm", wantOK: true},
		{name: "string unchanged", cssName: "align-items", value: "center", want: "center", wantOK: true},
		{name: "quoted string unchanged", cssName: "justify-content", value: `"center"`, want: `"center"`, wantOK: true},
		{name: "numeric string unchanged", cssName: "width", value: "10", want: "10", wantOK: true},
		{name: "line-height stays bare", cssName: "line-height", value: 1, want: "1", wantOK: true},
		{name: "line-height float", cssName: "line-height", value: 1.25, want: "1.25", wantOK: true},
		{name: "nil dropped", cssName: "width", value: nil, wantOK: false},
		{name: "bool dropped", cssName: "width", value: true, wantOK: false},
		{name: "map dropped", cssName: "width", value: map[string]any{"a": 1}, wantOK: false},
		{name: "slice dropped", cssName: "width", value: []any{1}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := NormalizeValue(tt.cssName, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("NormalizeValue(%q, %#v) ok = %v, want %v", tt.cssName, tt.value, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("NormalizeValue(%q, %#v) = %q, want %q", tt.cssName, tt.value, got, tt.want)
			}
		})
	}
}

func TestIsEmptyValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "nil", value: nil, want: true},
		{name: "empty string", value: "", want: true},
		{name: "blank string", value: "   ", want: true},
		{name: "text", value: "x", want: false},
		{name: "zero", value: 0, want: false},
		{name: "false", value: false, want: true},
		{name: "true", value: true, want: false},
		{name: "empty slice", value: []any{}, want: true},
		{name: "empty map", value: map[string]any{}, want: true},
		{name: "filled map", value: map[string]any{"a": 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsEmptyValue(tt.value); got != tt.want {
				t.Errorf("IsEmptyValue(%#v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
