package utils

import (
	"time"

	specsv1 "specmaster/gen/proto/specs/v1"
	"specmaster/internal/resolve"
)

// ToPBResolvedSpec converts one resolved row to its wire form.
func ToPBResolvedSpec(r resolve.ResolvedSpec) *specsv1.ResolvedSpec {
	uploaded := ""
	if !r.UploadedAt.IsZero() {
		uploaded = r.UploadedAt.UTC().Format(time.RFC3339)
	}
	return &specsv1.ResolvedSpec{
		Param:      r.Param,
		Value:      r.Value,
		Unit:       r.Unit,
		Source:     string(r.Source),
		Priority:   int32(r.Priority),
		UploadedAt: uploaded,
		Raw:        r.Raw,
	}
}

// ToPBResolvedSpecs converts a resolved slice, preserving order.
func ToPBResolvedSpecs(rows []resolve.ResolvedSpec) []*specsv1.ResolvedSpec {
	out := make([]*specsv1.ResolvedSpec, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToPBResolvedSpec(r))
	}
	return out
}
