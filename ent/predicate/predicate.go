// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Plan is the predicate function for plan builders.
type Plan func(*sql.Selector)

// Sheet is the predicate function for sheet builders.
type Sheet func(*sql.Selector)

// StageJob is the predicate function for stagejob builders.
type StageJob func(*sql.Selector)
