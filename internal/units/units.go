// Package units converts extracted numeric values into the canonical unit
// for their parameter family (lengths in mm or µm, pressure in bar,
// temperature in °C).
package units

import (
	"errors"
	"strconv"
	"strings"
)

// Target is a canonical unit a value can be normalized into.
type Target string

const (
	TargetMM      Target = "mm"
	TargetUM      Target = "um"
	TargetBar     Target = "bar"
	TargetCelsius Target = "celsius"
)

// ErrNotNumeric reports a value that cannot be parsed as a decimal number.
var ErrNotNumeric = errors.New("value is not numeric")

const psiToBar = 0.0689476

// Normalize converts value (optionally carrying a unit) into the target unit
// and returns the converted number as a string. A leading "±" is stripped
// before parsing. With no unit the parsed number is returned unchanged.
// Unknown unit/target combinations pass the number through unconverted:
// keeping an un-normalized observation beats discarding it.
func Normalize(value, unit string, target Target) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(value), "±"), 64)
	if err != nil {
		return "", ErrNotNumeric
	}
	if unit == "" {
		return FormatValue(v), nil
	}
	u := strings.ToLower(unit)

	switch target {
	case TargetMM:
		switch u {
		case "mm":
			return FormatValue(v), nil
		case "cm":
			return FormatValue(v * 10), nil
		case "m":
			return FormatValue(v * 1000), nil
		case "µm", "um", "micron":
			return FormatValue(v / 1000), nil
		}
	case TargetUM:
		switch u {
		case "µm", "um", "micron":
			return FormatValue(v), nil
		case "mm":
			return FormatValue(v * 1000), nil
		}
	case TargetBar:
		switch u {
		case "bar":
			return FormatValue(v), nil
		case "psi":
			return FormatValue(v * psiToBar), nil
		}
	case TargetCelsius:
		if u == "f" {
			return FormatValue((v - 32) * 5 / 9), nil
		}
		return FormatValue(v), nil
	}
	return FormatValue(v), nil
}

// FormatValue renders a float the way the variant store expects: shortest
// round-trip form, with integral values keeping one decimal ("100.0").
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// TargetForParam picks the normalization target for a canonical parameter
// name, or false when the parameter takes its extracted value verbatim.
func TargetForParam(param string) (Target, bool) {
	for _, k := range []string{"diameter", "hole", "cap", "thickness", "length", "width", "size"} {
		if strings.Contains(param, k) {
			return TargetMM, true
		}
	}
	if strings.Contains(param, "surface_finish") || strings.Contains(param, "finish") {
		return TargetUM, true
	}
	if strings.Contains(param, "pressure") {
		return TargetBar, true
	}
	if strings.Contains(param, "temperature") {
		return TargetCelsius, true
	}
	return "", false
}
