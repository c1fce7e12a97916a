package specs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"specmaster/constants"
)

// Override is one normalized manual edit: a USER-trusted value for a
// parameter. Boundary payloads arrive either structured ({value, unit,
// source}) or as free text ("25 mm"); both parse into this record before
// touching the variant store.
type Override struct {
	Param  string
	Value  string
	Unit   string
	Source constants.SourceType
}

type structuredOverride struct {
	Value  json.RawMessage `json:"value"`
	Unit   string          `json:"unit"`
	Source string          `json:"source"`
}

// ParseOverrides normalizes a parameter→payload mapping. Entries with a
// blank parameter or a blank value are skipped, matching the permissive
// edit semantics: a sparse form submission never fails the whole batch.
func ParseOverrides(payload map[string]json.RawMessage) ([]Override, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("payload must be a non-empty map of parameter updates")
	}
	out := make([]Override, 0, len(payload))
	for param, raw := range payload {
		if strings.TrimSpace(param) == "" {
			continue
		}
		o, ok := parseOverrideValue(param, raw)
		if !ok {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func parseOverrideValue(param string, raw json.RawMessage) (Override, bool) {
	o := Override{Param: param, Source: constants.SourceUser}

	// a structured entry never falls through to free text: an object
	// without a usable value is skipped, not stored verbatim
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		var s structuredOverride
		if err := json.Unmarshal(raw, &s); err != nil {
			return Override{}, false
		}
		if len(s.Value) == 0 || string(bytes.TrimSpace(s.Value)) == "null" {
			return Override{}, false
		}
		o.Value = strings.TrimSpace(scalarToString(s.Value))
		o.Unit = strings.TrimSpace(s.Unit)
		if src := strings.TrimSpace(s.Source); src != "" {
			o.Source = constants.SourceType(src)
		}
		return o, o.Value != ""
	}

	// free text: single token is the value; with more, the last token is
	// the unit and the rest join into the value
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		text = string(raw)
	}
	tokens := strings.Fields(text)
	switch {
	case len(tokens) == 0:
		return Override{}, false
	case len(tokens) == 1:
		o.Value = tokens[0]
	default:
		o.Value = strings.Join(tokens[:len(tokens)-1], " ")
		o.Unit = tokens[len(tokens)-1]
	}
	return o, true
}

func scalarToString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
