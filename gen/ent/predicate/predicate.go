// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// RawExtraction is the predicate function for rawextraction builders.
type RawExtraction func(*sql.Selector)

// SpecVariant is the predicate function for specvariant builders.
type SpecVariant func(*sql.Selector)
