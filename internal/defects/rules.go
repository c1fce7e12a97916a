// Package defects decides whether a reported product defect is repairable
// by evaluating a declarative rule table against the merged master.
package defects

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Special handler tags.
const (
	SpecialAlwaysFail = "always_fail"
	SpecialCoating    = "coating"
)

// Rule is one declarative row keyed by defect type: either a special
// handler or a comparison of a defect-record field against a resolved
// specification parameter.
type Rule struct {
	DefectType string `json:"defect_type"`
	Special    string `json:"special,omitempty"`
	SpecName   string `json:"spec_name,omitempty"`
	Field      string `json:"field,omitempty"`
	Op         string `json:"op,omitempty"`
	OK         string `json:"ok,omitempty"`
	Fail       string `json:"fail,omitempty"`
}

const rulesSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["defect_type"],
    "properties": {
      "defect_type": {"type": "string", "minLength": 1},
      "special": {"enum": ["", "always_fail", "coating"]},
      "spec_name": {"type": "string"},
      "field": {"type": "string"},
      "op": {"enum": ["", "<=", "<", ">=", ">", "=="]},
      "ok": {"type": "string"},
      "fail": {"type": "string"}
    },
    "additionalProperties": false
  }
}`

var compiledRulesSchema = mustCompile(rulesSchema)

func mustCompile(schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader([]byte(schema))); err != nil {
		panic(err)
	}
	return compiler.MustCompile("schema.json")
}

// ParseRulesJSON decodes and validates a JSON rule table.
func ParseRulesJSON(data []byte) ([]Rule, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	if err := compiledRulesSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("rules do not match schema: %w", err)
	}
	var rules []Rule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("unmarshal rules: %w", err)
	}
	return rules, nil
}

// ParseRulesCSV decodes a CSV rule table. The header row names the rule
// columns; unknown columns are ignored.
func ParseRulesCSV(data []byte) ([]Rule, error) {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read rules csv: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("rules csv needs a header row and at least one rule")
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rules := make([]Rule, 0, len(records)-1)
	for _, row := range records[1:] {
		r := Rule{
			DefectType: get(row, "defect_type"),
			Special:    get(row, "special"),
			SpecName:   get(row, "spec_name"),
			Field:      get(row, "field"),
			Op:         get(row, "op"),
			OK:         get(row, "ok"),
			Fail:       get(row, "fail"),
		}
		if r.DefectType == "" {
			continue
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules csv has no usable rows")
	}
	return rules, nil
}

// LoadRules reads a rule table from a JSON or CSV file, falling back to
// the compiled-in defaults when path is empty.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseRulesCSV(data)
	}
	return ParseRulesJSON(data)
}

// DefaultRules is the compiled-in defect rule table.
func DefaultRules() []Rule {
	return []Rule{
		{DefectType: "dent", SpecName: "max_pressure", Field: "measured_pressure", Op: "<=", OK: "Repairable", Fail: "Not Repairable"},
		{DefectType: "tear", SpecName: "tear_size_limit", Field: "tear_size", Op: "<=", OK: "Repairable", Fail: "Not Repairable"},
		{DefectType: "hole", SpecName: "hole_diameter", Field: "hole_size", Op: "<=", OK: "Repairable", Fail: "Not Repairable"},
		{DefectType: "scratch", Special: SpecialCoating, OK: "Repairable", Fail: "Not Repairable"},
		{DefectType: "crack", Special: SpecialAlwaysFail, Fail: "Not Repairable"},
		{DefectType: "material_mismatch", SpecName: "material_type", Field: "material", Op: "==", OK: "Repairable", Fail: "Not Repairable"},
	}
}
