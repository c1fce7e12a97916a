package units

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLengths(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		unit   string
		target Target
		want   string
	}{
		{"cm to mm", "10", "cm", TargetMM, "100.0"},
		{"um to mm", "100", "um", TargetMM, "0.1"},
		{"micron to mm", "500", "micron", TargetMM, "0.5"},
		{"m to mm", "1.2", "m", TargetMM, "1200.0"},
		{"mm passthrough", "25", "mm", TargetMM, "25.0"},
		{"mm to um", "0.8", "mm", TargetUM, "800.0"},
		{"um passthrough", "12", "µm", TargetUM, "12.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.value, tt.unit, tt.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePressure(t *testing.T) {
	got, err := Normalize("14.5", "psi", TargetBar)
	require.NoError(t, err)
	f, err := strconv.ParseFloat(got, 64)
	require.NoError(t, err)
	assert.InDelta(t, 0.99974, f, 1e-4)

	got, err = Normalize("10", "bar", TargetBar)
	require.NoError(t, err)
	assert.Equal(t, "10.0", got)
}

func TestNormalizeTemperature(t *testing.T) {
	got, err := Normalize("212", "f", TargetCelsius)
	require.NoError(t, err)
	assert.Equal(t, "100.0", got)

	// non-Fahrenheit temperature units pass through unconverted
	got, err = Normalize("85", "c", TargetCelsius)
	require.NoError(t, err)
	assert.Equal(t, "85.0", got)
}

func TestNormalizeEdgeCases(t *testing.T) {
	// leading ± stripped before parsing
	got, err := Normalize("±0.5", "mm", TargetMM)
	require.NoError(t, err)
	assert.Equal(t, "0.5", got)

	// no unit: parsed value returned regardless of target
	got, err = Normalize("42", "", TargetBar)
	require.NoError(t, err)
	assert.Equal(t, "42.0", got)

	// unknown unit/target combination passes the number through
	got, err = Normalize("7", "psi", TargetMM)
	require.NoError(t, err)
	assert.Equal(t, "7.0", got)

	_, err = Normalize("steel", "mm", TargetMM)
	assert.ErrorIs(t, err, ErrNotNumeric)
}

func TestTargetForParam(t *testing.T) {
	tests := []struct {
		param  string
		target Target
		ok     bool
	}{
		{"cap_diameter", TargetMM, true},
		{"hole_diameter", TargetMM, true},
		{"thickness_tolerance", TargetMM, true},
		{"tear_size_limit", TargetMM, true},
		{"surface_finish_tolerance", TargetUM, true},
		{"max_pressure", TargetBar, true},
		{"min_temperature", TargetCelsius, true},
		{"material_type", "", false},
	}
	for _, tt := range tests {
		target, ok := TargetForParam(tt.param)
		assert.Equal(t, tt.ok, ok, tt.param)
		assert.Equal(t, tt.target, target, tt.param)
	}
}
