package defects

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"specmaster/internal/resolve"
)

// Sentinel decisions, distinct so consumers can tell rule-table gaps apart
// from data gaps.
const (
	DecisionRuleNotFound  = "Unknown1" // no rule for the defect type
	DecisionSpecMissing   = "Unknown2" // rule exists, spec parameter unresolved
	DecisionNotComparable = "Unknown3" // operands admit no comparison
)

// Fallback outcomes when a rule row leaves ok/fail blank.
const (
	DefaultOK   = "Repairable"
	DefaultFail = "Not Repairable"
)

// Operator dispatch over parsed floats. Comparisons never go through any
// expression evaluation of rule or record text.
var operators = map[string]func(field, spec float64) bool{
	"<=": func(a, b float64) bool { return a <= b },
	"<":  func(a, b float64) bool { return a < b },
	">=": func(a, b float64) bool { return a >= b },
	">":  func(a, b float64) bool { return a > b },
	"==": func(a, b float64) bool { return a == b },
}

// Engine evaluates defect records against the rule table and a merged
// master. Stateless: one lookup-and-evaluate per record.
type Engine struct {
	rules  []Rule
	logger *slog.Logger
}

func NewEngine(rules []Rule, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{rules: rules, logger: logger}
}

// Classify decides the outcome for one defect record. The record's
// "defect_type" field selects the rule (case-insensitive, first match wins
// when duplicates exist).
func (e *Engine) Classify(record map[string]any, master resolve.MergedMaster) string {
	dtype := strings.ToLower(strings.TrimSpace(asString(record["defect_type"])))

	var rule *Rule
	for i := range e.rules {
		if strings.ToLower(e.rules[i].DefectType) == dtype {
			rule = &e.rules[i]
			break
		}
	}
	if rule == nil {
		return DecisionRuleNotFound
	}

	okOutcome, failOutcome := rule.OK, rule.Fail
	if okOutcome == "" {
		okOutcome = DefaultOK
	}
	if failOutcome == "" {
		failOutcome = DefaultFail
	}

	switch strings.ToLower(rule.Special) {
	case SpecialAlwaysFail:
		return failOutcome
	case SpecialCoating:
		if v, ok := master.ChosenValue("coating_required"); ok {
			switch strings.ToLower(v) {
			case "yes", "true", "1":
				return failOutcome
			}
		}
		return okOutcome
	}

	specVal, ok := master.ChosenValue(rule.SpecName)
	if rule.SpecName != "" && !ok {
		return DecisionSpecMissing
	}

	fieldVal, hasField := record[rule.Field]
	if rule.SpecName == "" || rule.Field == "" || !hasField || fieldVal == nil {
		return DecisionNotComparable
	}

	if cmp, known := operators[rule.Op]; known {
		specNum, specErr := asFloat(specVal)
		fieldNum, fieldErr := asFloat(fieldVal)
		if specErr == nil && fieldErr == nil {
			if cmp(fieldNum, specNum) {
				return okOutcome
			}
			return failOutcome
		}
		// non-numeric operands: string equality is only meaningful for ==
		if rule.Op == "==" {
			if strings.EqualFold(asString(fieldVal), specVal) {
				return okOutcome
			}
			return failOutcome
		}
	}
	return DecisionNotComparable
}

// ClassifyBatch classifies every record and returns the decision column in
// record order.
func (e *Engine) ClassifyBatch(records []map[string]any, master resolve.MergedMaster) []string {
	decisions := make([]string, len(records))
	for i, record := range records {
		decisions[i] = e.Classify(record, master)
	}
	e.logger.Info("defects classified", "count", len(records))
	return decisions
}

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprintf("%v", s)
	}
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
