// Package parse pulls numeric value and unit tokens out of free-text
// specification lines.
package parse

import (
	"regexp"
	"strings"
)

// Longer unit tokens listed first so "micron" is not consumed as "m".
var valueUnitRe = regexp.MustCompile(`(?i)([±]?\d+(?:\.\d+)?)\s*(micron|mm|cm|µm|um|m|bar|psi|°C|C|F)?`)

// ExtractValueUnit scans line for the first numeric token and its optional
// unit. Units come back lowercased with "micron" canonicalized to "µm".
// When no numeric token exists, the last whitespace token is taken as a
// bare value, provided the line has at least two tokens.
func ExtractValueUnit(line string) (value, unit string, ok bool) {
	m := valueUnitRe.FindStringSubmatch(line)
	if m != nil && m[1] != "" {
		value = m[1]
		if m[2] != "" {
			unit = strings.ToLower(m[2])
			if unit == "micron" {
				unit = "µm"
			}
		}
		return value, unit, true
	}

	tokens := strings.Fields(line)
	if len(tokens) >= 2 {
		return tokens[len(tokens)-1], "", true
	}
	return "", "", false
}
