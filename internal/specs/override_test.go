package specs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specmaster/constants"
)

func parseOne(t *testing.T, param, raw string) (Override, bool) {
	t.Helper()
	return parseOverrideValue(param, json.RawMessage(raw))
}

func TestParseOverrideStructured(t *testing.T) {
	o, ok := parseOne(t, "cap_diameter", `{"value": "25", "unit": "mm"}`)
	require.True(t, ok)
	assert.Equal(t, Override{Param: "cap_diameter", Value: "25", Unit: "mm", Source: constants.SourceUser}, o)

	// numeric value tolerated
	o, ok = parseOne(t, "max_pressure", `{"value": 10.5, "unit": "bar"}`)
	require.True(t, ok)
	assert.Equal(t, "10.5", o.Value)

	// explicit source kept
	o, ok = parseOne(t, "cap_diameter", `{"value": "25", "source": "QA"}`)
	require.True(t, ok)
	assert.Equal(t, constants.SourceType("QA"), o.Source)
}

func TestParseOverrideFreeText(t *testing.T) {
	o, ok := parseOne(t, "cap_diameter", `"25 mm"`)
	require.True(t, ok)
	assert.Equal(t, "25", o.Value)
	assert.Equal(t, "mm", o.Unit)

	// single token: value only
	o, ok = parseOne(t, "material_type", `"steel"`)
	require.True(t, ok)
	assert.Equal(t, "steel", o.Value)
	assert.Empty(t, o.Unit)

	// multiple tokens: last is the unit, rest join into the value
	o, ok = parseOne(t, "length_tolerance", `"plus minus 0.5 mm"`)
	require.True(t, ok)
	assert.Equal(t, "plus minus 0.5", o.Value)
	assert.Equal(t, "mm", o.Unit)
}

func TestParseOverrideBlankSkipped(t *testing.T) {
	_, ok := parseOne(t, "cap_diameter", `{"value": "   "}`)
	assert.False(t, ok)

	_, ok = parseOne(t, "cap_diameter", `"   "`)
	assert.False(t, ok)
}

func TestParseOverrideStructuredWithoutValueSkipped(t *testing.T) {
	// an object missing its value must not be stored as free text
	_, ok := parseOne(t, "cap_diameter", `{"unit": "mm"}`)
	assert.False(t, ok)

	_, ok = parseOne(t, "cap_diameter", `{"value": null, "unit": "mm"}`)
	assert.False(t, ok)

	_, ok = parseOne(t, "cap_diameter", `{}`)
	assert.False(t, ok)

	_, ok = parseOne(t, "cap_diameter", `{"value": "25", "unit":`)
	assert.False(t, ok)
}

func TestParseOverrides(t *testing.T) {
	payload := map[string]json.RawMessage{
		"cap_diameter": json.RawMessage(`{"value": "25", "unit": "mm"}`),
		"":             json.RawMessage(`"ignored"`),
		"max_pressure": json.RawMessage(`"10 bar"`),
	}
	overrides, err := ParseOverrides(payload)
	require.NoError(t, err)
	assert.Len(t, overrides, 2)

	_, err = ParseOverrides(nil)
	assert.Error(t, err)
}
