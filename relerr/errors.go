// Package relerr defines the error kinds raised while building and
// compiling a query tree. Builders panic with these types at the call
// site that discovered the problem, and that panic reaches the builder's
// caller; compiler.Compile recovers the ones raised during its own walk
// of the tree and returns them as a plain error.
package relerr

import "fmt"

// SchemaMiss is raised when a column name has no match in a table's schema.
type SchemaMiss struct {
	Table  string
	Column string
}

func (e *SchemaMiss) Error() string {
	return fmt.Sprintf("relast: column %q not found in schema of table %q", e.Column, e.Table)
}

// ScopeMiss is raised by Select.Col and Cte.Col when a name is not one
// of that relation's output columns. The compiler does not raise it: a
// DeferredColumn (this.X) is checked only against the schemas of the
// tables in scope, and is accepted unchecked when none of them has one.
type ScopeMiss struct {
	Column string
}

func (e *ScopeMiss) Error() string {
	return fmt.Sprintf("relast: %q is not in scope", e.Column)
}

// AmbiguousReference is raised when a bare column name resolves against
// more than one source in scope.
type AmbiguousReference struct {
	Column string
}

func (e *AmbiguousReference) Error() string {
	return fmt.Sprintf("relast: reference to %q is ambiguous", e.Column)
}

// StructuralError is raised when a builder call is invoked in an invalid
// order or combination (e.g. Having without a prior GroupBy).
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "relast: " + e.Msg
}

// DialectUnsupported is raised when the compiler needs a Dialect hook
// the bound dialect does not implement for the construct being rendered.
type DialectUnsupported struct {
	Feature string
}

func (e *DialectUnsupported) Error() string {
	return fmt.Sprintf("relast: dialect does not support %s", e.Feature)
}
