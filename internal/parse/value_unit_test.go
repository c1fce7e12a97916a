package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValueUnit(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		value string
		unit  string
		ok    bool
	}{
		{"value with unit attached", "Cap diameter: 25mm", "25", "mm", true},
		{"value with spaced unit", "Max pressure 14.5 psi", "14.5", "psi", true},
		{"tolerance sign", "Length tolerance ±0.5 mm", "±0.5", "mm", true},
		{"micron canonicalized", "Surface finish 12 micron", "12", "µm", true},
		{"uppercase unit lowered", "Surface finish 12 UM", "12", "um", true},
		{"celsius degrees", "Max temperature 85°C", "85", "°c", true},
		{"bare number no unit", "Tear size limit 3", "3", "", true},
		{"fallback last token", "Material type: steel", "steel", "", true},
		{"single token no fallback", "steel", "", "", false},
		{"empty line", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit, ok := ExtractValueUnit(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.unit, unit)
		})
	}
}
