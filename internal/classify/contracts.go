package classify

import "context"

// Matcher scores a free-text line against the canonical parameter catalog
// and returns the best-matching parameter id with a similarity score in
// [-1,1]. An empty param means nothing in the catalog matched at all.
type Matcher interface {
	BestMatch(ctx context.Context, line string) (param string, score float64, err error)
}
