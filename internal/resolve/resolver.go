// Package resolve computes the merged master view from the variant store.
// Resolution is recomputed from the full variant set on every read; the
// merged master is never materialized as its own table.
package resolve

import (
	"sort"
	"time"

	"specmaster/constants"
	"specmaster/internal/entity"
)

// ResolvedSpec is the per-variant record shape the query surface returns.
type ResolvedSpec struct {
	Param      string               `json:"param"`
	Value      string               `json:"value"`
	Unit       string               `json:"unit"`
	Source     constants.SourceType `json:"source"`
	Origin     string               `json:"origin"`
	Priority   int                  `json:"priority"`
	UploadedAt time.Time            `json:"uploaded_at"`
	Raw        string               `json:"raw"`
}

// MasterEntry is the merged view for one parameter: the full variant
// history plus the currently chosen variant.
type MasterEntry struct {
	Chosen   *ResolvedSpec  `json:"chosen"`
	Variants []ResolvedSpec `json:"variants"`
}

// MergedMaster maps parameter id to its merged entry.
type MergedMaster map[string]MasterEntry

// ChosenValue returns the chosen value for param, reporting false when the
// parameter is unresolved (absent or empty value).
func (m MergedMaster) ChosenValue(param string) (string, bool) {
	entry, ok := m[param]
	if !ok || entry.Chosen == nil || entry.Chosen.Value == "" {
		return "", false
	}
	return entry.Chosen.Value, true
}

func toResolved(v entity.SpecVariant) ResolvedSpec {
	return ResolvedSpec{
		Param:      v.Param,
		Value:      v.Value,
		Unit:       v.Unit,
		Source:     v.Source,
		Origin:     v.Origin,
		Priority:   v.Priority,
		UploadedAt: v.UploadedAt,
		Raw:        v.Raw,
	}
}

// Raw converts stored rows as-is: duplicates preserved, no grouping.
func Raw(variants []entity.SpecVariant) []ResolvedSpec {
	out := make([]ResolvedSpec, len(variants))
	for i, v := range variants {
		out[i] = toResolved(v)
	}
	return out
}

// GroupAll returns every variant for every parameter, grouped by parameter
// and ordered by insertion time. This is the "all" strategy: full history,
// no single winner.
func GroupAll(variants []entity.SpecVariant) map[string][]ResolvedSpec {
	grouped := make(map[string][]ResolvedSpec)
	for _, v := range variants {
		grouped[v.Param] = append(grouped[v.Param], toResolved(v))
	}
	for _, vs := range grouped {
		sort.SliceStable(vs, func(i, j int) bool {
			return vs[i].UploadedAt.Before(vs[j].UploadedAt)
		})
	}
	return grouped
}

// choose orders a parameter's variants by the strategy and returns the
// winner. For priority, the numerically smallest priority wins with ties
// broken by most recent upload — USER overrides carry priority 0 and
// therefore always win. For latest, recency alone decides.
func choose(vs []ResolvedSpec, strategy constants.Strategy) *ResolvedSpec {
	if len(vs) == 0 {
		return nil
	}
	best := vs[0]
	for _, v := range vs[1:] {
		if strategy == constants.StrategyLatest {
			if v.UploadedAt.After(best.UploadedAt) {
				best = v
			}
			continue
		}
		if v.Priority < best.Priority ||
			(v.Priority == best.Priority && v.UploadedAt.After(best.UploadedAt)) {
			best = v
		}
	}
	return &best
}

// Merge resolves one chosen variant per parameter under the given strategy.
// Results are ordered by parameter name for stable output.
func Merge(variants []entity.SpecVariant, strategy constants.Strategy) []ResolvedSpec {
	grouped := GroupAll(variants)
	params := make([]string, 0, len(grouped))
	for p := range grouped {
		params = append(params, p)
	}
	sort.Strings(params)

	out := make([]ResolvedSpec, 0, len(params))
	for _, p := range params {
		if chosen := choose(grouped[p], strategy); chosen != nil {
			out = append(out, *chosen)
		}
	}
	return out
}

// BuildMaster computes the full merged master: per parameter, the ordered
// variant history and the priority-strategy chosen variant. This is the
// view the defect rule engine consumes.
func BuildMaster(variants []entity.SpecVariant) MergedMaster {
	master := make(MergedMaster)
	for param, vs := range GroupAll(variants) {
		master[param] = MasterEntry{
			Chosen:   choose(vs, constants.StrategyPriority),
			Variants: vs,
		}
	}
	return master
}
