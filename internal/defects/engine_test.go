package defects

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"specmaster/internal/resolve"
)

func masterWith(values map[string]string) resolve.MergedMaster {
	m := make(resolve.MergedMaster, len(values))
	for param, value := range values {
		m[param] = resolve.MasterEntry{
			Chosen: &resolve.ResolvedSpec{Param: param, Value: value},
		}
	}
	return m
}

var dentRule = Rule{
	DefectType: "dent",
	SpecName:   "max_pressure",
	Field:      "measured_pressure",
	Op:         "<=",
	OK:         "Repairable",
	Fail:       "Not Repairable",
}

func TestClassifyNumericComparison(t *testing.T) {
	e := NewEngine([]Rule{dentRule}, slog.Default())
	master := masterWith(map[string]string{"max_pressure": "10"})

	got := e.Classify(map[string]any{"defect_type": "dent", "measured_pressure": 8}, master)
	assert.Equal(t, "Repairable", got)

	got = e.Classify(map[string]any{"defect_type": "dent", "measured_pressure": 12}, master)
	assert.Equal(t, "Not Repairable", got)

	// numeric strings parse too
	got = e.Classify(map[string]any{"defect_type": "dent", "measured_pressure": "9.5"}, master)
	assert.Equal(t, "Repairable", got)

	// defect type matching is case-insensitive
	got = e.Classify(map[string]any{"defect_type": "Dent", "measured_pressure": 8}, master)
	assert.Equal(t, "Repairable", got)
}

func TestClassifyRuleNotFound(t *testing.T) {
	e := NewEngine([]Rule{dentRule}, slog.Default())
	got := e.Classify(map[string]any{"defect_type": "warp"}, masterWith(nil))
	assert.Equal(t, DecisionRuleNotFound, got)
}

func TestClassifySpecMissing(t *testing.T) {
	e := NewEngine([]Rule{dentRule}, slog.Default())
	got := e.Classify(map[string]any{"defect_type": "dent", "measured_pressure": 8}, masterWith(nil))
	assert.Equal(t, DecisionSpecMissing, got)

	// empty chosen value counts as unresolved
	got = e.Classify(
		map[string]any{"defect_type": "dent", "measured_pressure": 8},
		masterWith(map[string]string{"max_pressure": ""}),
	)
	assert.Equal(t, DecisionSpecMissing, got)
}

func TestClassifyNotComparable(t *testing.T) {
	e := NewEngine([]Rule{dentRule}, slog.Default())
	master := masterWith(map[string]string{"max_pressure": "10"})

	// missing field
	got := e.Classify(map[string]any{"defect_type": "dent"}, master)
	assert.Equal(t, DecisionNotComparable, got)

	// non-numeric operand under an ordering operator
	got = e.Classify(map[string]any{"defect_type": "dent", "measured_pressure": "high"}, master)
	assert.Equal(t, DecisionNotComparable, got)
}

func TestClassifyStringEquality(t *testing.T) {
	rule := Rule{
		DefectType: "material_mismatch",
		SpecName:   "material_type",
		Field:      "material",
		Op:         "==",
		OK:         "Repairable",
		Fail:       "Not Repairable",
	}
	e := NewEngine([]Rule{rule}, slog.Default())
	master := masterWith(map[string]string{"material_type": "steel"})

	got := e.Classify(map[string]any{"defect_type": "material_mismatch", "material": "Steel"}, master)
	assert.Equal(t, "Repairable", got)

	got = e.Classify(map[string]any{"defect_type": "material_mismatch", "material": "brass"}, master)
	assert.Equal(t, "Not Repairable", got)
}

func TestClassifyAlwaysFail(t *testing.T) {
	e := NewEngine([]Rule{{DefectType: "crack", Special: SpecialAlwaysFail, Fail: "Scrap"}}, slog.Default())
	got := e.Classify(map[string]any{"defect_type": "crack"}, masterWith(nil))
	assert.Equal(t, "Scrap", got)
}

func TestClassifyCoating(t *testing.T) {
	e := NewEngine([]Rule{{DefectType: "scratch", Special: SpecialCoating}}, slog.Default())

	for _, v := range []string{"yes", "TRUE", "1"} {
		got := e.Classify(
			map[string]any{"defect_type": "scratch"},
			masterWith(map[string]string{"coating_required": v}),
		)
		assert.Equal(t, DefaultFail, got, v)
	}

	got := e.Classify(
		map[string]any{"defect_type": "scratch"},
		masterWith(map[string]string{"coating_required": "no"}),
	)
	assert.Equal(t, DefaultOK, got)

	// no coating spec at all: repairable
	got = e.Classify(map[string]any{"defect_type": "scratch"}, masterWith(nil))
	assert.Equal(t, DefaultOK, got)
}

func TestClassifyFirstMatchingRuleWins(t *testing.T) {
	e := NewEngine([]Rule{
		{DefectType: "dent", Special: SpecialAlwaysFail, Fail: "First"},
		{DefectType: "dent", Special: SpecialAlwaysFail, Fail: "Second"},
	}, slog.Default())
	got := e.Classify(map[string]any{"defect_type": "dent"}, masterWith(nil))
	assert.Equal(t, "First", got)
}

func TestClassifyBatch(t *testing.T) {
	e := NewEngine(DefaultRules(), slog.Default())
	master := masterWith(map[string]string{"max_pressure": "10", "tear_size_limit": "3"})

	decisions := e.ClassifyBatch([]map[string]any{
		{"defect_type": "dent", "measured_pressure": 8},
		{"defect_type": "tear", "tear_size": 5},
		{"defect_type": "crack"},
		{"defect_type": "unknown_kind"},
	}, master)

	assert.Equal(t, []string{"Repairable", "Not Repairable", "Not Repairable", DecisionRuleNotFound}, decisions)
}
