package constants

import "strings"

// Strategy selects how conflicting variants resolve into a merged master.
type Strategy string

const (
	StrategyPriority Strategy = "priority" // lowest priority rank wins, tie-break by recency
	StrategyLatest   Strategy = "latest"   // most recent upload wins
	StrategyAll      Strategy = "all"      // full history per parameter, no single winner
)

// View selects the shape of a spec query result.
type View string

const (
	ViewMerged View = "merged"
	ViewRaw    View = "raw"
)

// ParseStrategy normalizes a strategy string, defaulting to priority.
func ParseStrategy(s string) Strategy {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyLatest:
		return StrategyLatest
	case StrategyAll:
		return StrategyAll
	default:
		return StrategyPriority
	}
}

// ParseView normalizes a view string, defaulting to merged.
func ParseView(s string) View {
	if View(strings.ToLower(strings.TrimSpace(s))) == ViewRaw {
		return ViewRaw
	}
	return ViewMerged
}
