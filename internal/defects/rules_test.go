package defects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRulesJSON(t *testing.T) {
	rules, err := ParseRulesJSON([]byte(`[
		{"defect_type": "dent", "spec_name": "max_pressure", "field": "measured_pressure",
		 "op": "<=", "ok": "Repairable", "fail": "Not Repairable"},
		{"defect_type": "crack", "special": "always_fail", "fail": "Not Repairable"}
	]`))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "dent", rules[0].DefectType)
	assert.Equal(t, "<=", rules[0].Op)
	assert.Equal(t, SpecialAlwaysFail, rules[1].Special)
}

func TestParseRulesJSONRejectsSchemaViolations(t *testing.T) {
	// unknown operator
	_, err := ParseRulesJSON([]byte(`[{"defect_type": "dent", "op": "!="}]`))
	assert.Error(t, err)

	// unknown special tag
	_, err = ParseRulesJSON([]byte(`[{"defect_type": "dent", "special": "explode"}]`))
	assert.Error(t, err)

	// missing defect_type
	_, err = ParseRulesJSON([]byte(`[{"op": "<="}]`))
	assert.Error(t, err)
}

func TestParseRulesCSV(t *testing.T) {
	data := []byte("defect_type,special,spec_name,field,op,ok,fail\n" +
		"dent,,max_pressure,measured_pressure,<=,Repairable,Not Repairable\n" +
		"crack,always_fail,,,,,Not Repairable\n")
	rules, err := ParseRulesCSV(data)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "max_pressure", rules[0].SpecName)
	assert.Equal(t, SpecialAlwaysFail, rules[1].Special)
}

func TestParseRulesCSVNoRows(t *testing.T) {
	_, err := ParseRulesCSV([]byte("defect_type,op\n"))
	assert.Error(t, err)
}

func TestDefaultRulesCoverSpecials(t *testing.T) {
	rules := DefaultRules()
	var specials []string
	for _, r := range rules {
		if r.Special != "" {
			specials = append(specials, r.Special)
		}
	}
	assert.Contains(t, specials, SpecialAlwaysFail)
	assert.Contains(t, specials, SpecialCoating)
}
