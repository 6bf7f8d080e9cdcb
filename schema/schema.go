// Package schema attaches column-name/type information to a table
// reference so the builder can validate column access and, for
// case-insensitive schemas, canonicalize the name the compiler renders.
package schema

import (
	"strings"

	"github.com/bawdo/relast/relerr"
)

// Schema maps column names to SQL types for one table.
type Schema struct {
	columns     map[string]string
	insensitive bool
	// canonical maps a lowercased name back to the name as stored,
	// used only when insensitive is true.
	canonical map[string]string
}

// New builds a case-sensitive schema from a name->type map.
func New(columns map[string]string) *Schema {
	return &Schema{columns: columns}
}

// NewCaseInsensitive builds a schema whose lookups ignore case; the
// canonical, as-given casing is always what gets resolved and rendered.
func NewCaseInsensitive(columns map[string]string) *Schema {
	canonical := make(map[string]string, len(columns))
	for name := range columns {
		canonical[strings.ToLower(name)] = name
	}
	return &Schema{columns: columns, insensitive: true, canonical: canonical}
}

// Lookup validates that column exists and returns the name the compiler
// should render: the given name for case-sensitive schemas, or the
// canonically-stored name for case-insensitive ones. It panics with
// *relerr.SchemaMiss when the column is not found, per the builder's
// fail-immediately error policy.
func (s *Schema) Lookup(table, column string) string {
	if s == nil {
		return column
	}
	if s.insensitive {
		canon, ok := s.canonical[strings.ToLower(column)]
		if !ok {
			panic(&relerr.SchemaMiss{Table: table, Column: column})
		}
		return canon
	}
	if _, ok := s.columns[column]; !ok {
		panic(&relerr.SchemaMiss{Table: table, Column: column})
	}
	return column
}

// TryLookup is Lookup without the panic: it reports whether column
// exists and, if so, the name the compiler should render.
func (s *Schema) TryLookup(column string) (string, bool) {
	if s == nil {
		return column, false
	}
	if s.insensitive {
		canon, ok := s.canonical[strings.ToLower(column)]
		return canon, ok
	}
	_, ok := s.columns[column]
	return column, ok
}

// Type returns the declared SQL type for column, or "" if the schema is
// nil or the column is untyped.
func (s *Schema) Type(column string) string {
	if s == nil {
		return ""
	}
	if s.insensitive {
		canon, ok := s.canonical[strings.ToLower(column)]
		if !ok {
			return ""
		}
		return s.columns[canon]
	}
	return s.columns[column]
}
