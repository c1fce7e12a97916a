// Package catalog holds the fixed set of canonical specification
// parameters. The catalog is loaded once at startup and read-only
// thereafter; classifiers receive it explicitly rather than through
// package state.
package catalog

import (
	"fmt"
	"os"
)

// Parameter is one immutable catalog entry: a stable identifier plus the
// natural-language label variants the similarity service matches against.
type Parameter struct {
	ID     string   `json:"id"`
	Labels []string `json:"labels"`
}

// Catalog is an ordered, immutable set of canonical parameters.
type Catalog struct {
	params []Parameter
	byID   map[string]int
}

// New builds a catalog from parameter entries. Entries with empty ids,
// duplicate ids, or no labels are rejected.
func New(params []Parameter) (*Catalog, error) {
	c := &Catalog{
		params: make([]Parameter, 0, len(params)),
		byID:   make(map[string]int, len(params)),
	}
	for _, p := range params {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog entry with empty id")
		}
		if len(p.Labels) == 0 {
			return nil, fmt.Errorf("catalog entry %q has no labels", p.ID)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog entry %q", p.ID)
		}
		c.byID[p.ID] = len(c.params)
		c.params = append(c.params, p)
	}
	return c, nil
}

// Parameters returns the catalog entries in order.
func (c *Catalog) Parameters() []Parameter {
	out := make([]Parameter, len(c.params))
	copy(out, c.params)
	return out
}

// Has reports whether id names a catalog parameter.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of catalog parameters.
func (c *Catalog) Len() int {
	return len(c.params)
}

// Default returns the compiled-in parameter catalog.
func Default() *Catalog {
	c, err := New([]Parameter{
		{ID: "cap_diameter", Labels: []string{"cap diameter", "cap_dia", "cap dia"}},
		{ID: "tear_size_limit", Labels: []string{"tear size limit", "tear limit", "tear_size"}},
		{ID: "surface_finish_tolerance", Labels: []string{"surface finish tolerance", "surface finish tol"}},
		{ID: "hole_diameter", Labels: []string{"hole diameter", "hole dia"}},
		{ID: "length_tolerance", Labels: []string{"length tolerance"}},
		{ID: "width_tolerance", Labels: []string{"width tolerance"}},
		{ID: "thickness_tolerance", Labels: []string{"thickness tolerance"}},
		{ID: "material_type", Labels: []string{"material type", "material"}},
		{ID: "max_pressure", Labels: []string{"max pressure", "operating pressure"}},
		{ID: "max_temperature", Labels: []string{"max temperature", "max temp"}},
		{ID: "min_temperature", Labels: []string{"min temperature", "min temp"}},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads a catalog from a JSON file, falling back to the compiled-in
// default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}
